package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookshelf/internal/platform/dberr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const selectColumns = `isbn, title, author, publisher, publishing, coverurl, category`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ISBN, &b.Title, &b.Author, &b.Publisher, &b.Publishing, &b.CoverURL, &b.Category)
	return b, err
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO a_books_book (isbn, title, author, publisher, publishing, coverurl, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, b.ISBN, b.Title, b.Author, b.Publisher, b.Publishing, b.CoverURL, b.Category)
	if err != nil {
		return fmt.Errorf("create book %s: %w", b.ISBN, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO a_books_book (isbn, title, author, publisher, publishing, coverurl, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (isbn) DO UPDATE SET
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			publisher = EXCLUDED.publisher,
			publishing = EXCLUDED.publishing,
			coverurl = EXCLUDED.coverurl,
			category = EXCLUDED.category`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, b.ISBN, b.Title, b.Author, b.Publisher, b.Publishing, b.CoverURL, b.Category)
	if err != nil {
		return fmt.Errorf("upsert book %s: %w", b.ISBN, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query := `SELECT ` + selectColumns + ` FROM a_books_book WHERE isbn = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", argn))
		args = append(args, q.Category)
		argn++
	}

	if q.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, "%"+q.Author+"%")
		argn++
	}

	if q.Publisher != "" {
		clauses = append(clauses, fmt.Sprintf("publisher ILIKE $%d", argn))
		args = append(args, "%"+q.Publisher+"%")
		argn++
	}

	if q.Q != "" {
		clauses = append(clauses, fmt.Sprintf("(isbn ILIKE $%d OR title ILIKE $%d OR author ILIKE $%d)", argn, argn, argn))
		args = append(args, "%"+q.Q+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	sortCol := "title"
	switch q.Sort {
	case "publishing":
		sortCol = "publishing"
	case "author":
		sortCol = "author"
	}
	order := "ASC"
	if q.Desc {
		order = "DESC"
	}

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM a_books_book "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM a_books_book
		%s
		ORDER BY %s %s, isbn ASC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, sortCol, order, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	rows, err := r.db.Query(timeoutCtx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// Delete removes the book. The database cascades to its rankings, prices,
// averages and reading statuses, and clears the book on user activities.
func (r *PostgresRepo) Delete(ctx context.Context, isbn string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM a_books_book WHERE isbn = $1`, isbn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
