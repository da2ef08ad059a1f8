package readingstats

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

func (r *PostgresRepo) Create(ctx context.Context, s *Stats) error {
	const query = `
		INSERT INTO a_users_readingstats (user_id, total_pages_read, total_reading_time, favorite_genre, reading_streak, last_read_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query,
		s.UserID, s.TotalPagesRead, s.TotalReadingTime, s.FavoriteGenre, s.ReadingStreak, s.LastReadDate)
	if err != nil {
		return fmt.Errorf("create reading stats for user %d: %w", s.UserID, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, userID int64) (Stats, error) {
	const query = `
		SELECT user_id, total_pages_read, total_reading_time, favorite_genre, reading_streak, last_read_date
		FROM a_users_readingstats
		WHERE user_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var s Stats
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(
		&s.UserID, &s.TotalPagesRead, &s.TotalReadingTime, &s.FavoriteGenre, &s.ReadingStreak, &s.LastReadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Stats{}, ErrNotFound
		}
		return Stats{}, err
	}
	return s, nil
}

func (r *PostgresRepo) Save(ctx context.Context, s *Stats) error {
	const query = `
		UPDATE a_users_readingstats
		SET total_pages_read = $2, total_reading_time = $3, favorite_genre = $4, reading_streak = $5, last_read_date = $6
		WHERE user_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		s.UserID, s.TotalPagesRead, s.TotalReadingTime, s.FavoriteGenre, s.ReadingStreak, s.LastReadDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
