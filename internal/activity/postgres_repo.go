package activity

import (
	"context"
	"encoding/json"
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

const selectColumns = `id, user_id, activity_type, book_id, created_at, details`

func scanActivity(row pgx.CollectableRow) (Activity, error) {
	var a Activity
	var kind string
	var details []byte
	if err := row.Scan(&a.ID, &a.UserID, &kind, &a.BookISBN, &a.CreatedAt, &details); err != nil {
		return Activity{}, err
	}
	t, err := ParseType(kind)
	if err != nil {
		return Activity{}, fmt.Errorf("activity %d: %w", a.ID, err)
	}
	a.Type = t
	if err := json.Unmarshal(details, &a.Details); err != nil {
		return Activity{}, fmt.Errorf("decode details of activity %d: %w", a.ID, err)
	}
	return a, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, a *Activity) error {
	const query = `
		INSERT INTO a_users_useractivity (user_id, activity_type, book_id, created_at, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	details, err := json.Marshal(a.Details)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, query, a.UserID, string(a.Type), a.BookISBN, a.CreatedAt, details).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("record %s activity for user %d: %w", a.Type, a.UserID, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID int64, after *Cursor, limit int) ([]Activity, error) {
	query := `SELECT ` + selectColumns + ` FROM a_users_useractivity WHERE user_id = $1`
	args := []any{userID}
	if after != nil {
		query += ` AND (created_at, id) < ($2::timestamptz, $3::bigint)`
		args = append(args, after.CreatedAt, after.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanActivity)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, isbn string, limit int) ([]Activity, error) {
	query := `SELECT ` + selectColumns + `
		FROM a_users_useractivity
		WHERE book_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, isbn, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanActivity)
}
