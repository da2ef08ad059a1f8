package readinglist

import (
	"context"
	"errors"
	"fmt"
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

const selectColumns = `id, user_id, book_id, status, start_date, end_date, rating, review`

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	var status string
	if err := row.Scan(&e.ID, &e.UserID, &e.BookISBN, &status, &e.StartDate, &e.EndDate, &e.Rating, &e.Review); err != nil {
		return Entry{}, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return Entry{}, fmt.Errorf("reading status %d: %w", e.ID, err)
	}
	e.Status = st
	return e, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, e *Entry) error {
	const query = `
		INSERT INTO a_users_readingstatus (user_id, book_id, status, start_date, end_date, rating, review)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		e.UserID, e.BookISBN, string(e.Status), e.StartDate, e.EndDate, e.Rating, e.Review,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("add %s for user %d: %w", e.BookISBN, e.UserID, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, userID int64, isbn string) (Entry, error) {
	query := `SELECT ` + selectColumns + ` FROM a_users_readingstatus WHERE user_id = $1 AND book_id = $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	e, err := scanEntry(r.db.QueryRow(timeoutCtx, query, userID, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return e, nil
}

func (r *PostgresRepo) Update(ctx context.Context, e *Entry) error {
	const query = `
		UPDATE a_users_readingstatus
		SET status = $3, start_date = $4, end_date = $5, rating = $6, review = $7
		WHERE user_id = $1 AND book_id = $2
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		e.UserID, e.BookISBN, string(e.Status), e.StartDate, e.EndDate, e.Rating, e.Review,
	).Scan(&e.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, userID int64, status *Status, limit, offset int) ([]Entry, int, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}
	if status != nil {
		where += ` AND status = $2`
		args = append(args, string(*status))
	}

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM a_users_readingstatus `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM a_users_readingstatus
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(timeoutCtx, dataSQL, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) CountByStatus(ctx context.Context, userID int64) (map[Status]int, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM a_users_readingstatus
		WHERE user_id = $1
		GROUP BY status`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int, len(Statuses))
	for _, st := range Statuses {
		counts[st] = 0
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		st, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, userID int64, isbn string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM a_users_readingstatus WHERE user_id = $1 AND book_id = $2`, userID, isbn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
