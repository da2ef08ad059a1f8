package snapshot

import (
	"context"
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

func (r *PostgresRepo) InsertRanking(ctx context.Context, rk *Ranking) error {
	const query = `
		INSERT INTO a_books_kyoboranking (book_id, inputdate, kyoborank, kyoborating, kyoboreview, kyoboupdown)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING rankingid`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		rk.BookISBN, rk.InputDate, rk.Rank, rk.Rating, rk.Reviews, rk.UpDown,
	).Scan(&rk.ID)
	if err != nil {
		return fmt.Errorf("insert ranking for %s: %w", rk.BookISBN, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) InsertPrice(ctx context.Context, p *Price) error {
	const query = `
		INSERT INTO a_books_kyoboprice (book_id, inputdate, kyoboprice, kyobosaleprice, kyobopoint, kyobourl)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING priceid`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		p.BookISBN, p.InputDate, p.Price, p.SalePrice, p.Points, p.URL,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert price for %s: %w", p.BookISBN, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) InsertAverage(ctx context.Context, a *Average) error {
	const query = `
		INSERT INTO a_books_average (book_id, inputdate, averagerating, averageranking, averageweekranking)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING priceid`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		a.BookISBN, a.InputDate, a.Rating, a.Ranking, a.WeekRanking,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert average for %s: %w", a.BookISBN, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) Rankings(ctx context.Context, isbn string, limit int) ([]Ranking, error) {
	const query = `
		SELECT rankingid, book_id, inputdate, kyoborank, kyoborating, kyoboreview, kyoboupdown
		FROM a_books_kyoboranking
		WHERE book_id = $1
		ORDER BY inputdate DESC, rankingid DESC
		LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, isbn, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Ranking, error) {
		var rk Ranking
		err := row.Scan(&rk.ID, &rk.BookISBN, &rk.InputDate, &rk.Rank, &rk.Rating, &rk.Reviews, &rk.UpDown)
		return rk, err
	})
}

func (r *PostgresRepo) Prices(ctx context.Context, isbn string, limit int) ([]Price, error) {
	const query = `
		SELECT priceid, book_id, inputdate, kyoboprice, kyobosaleprice, kyobopoint, kyobourl
		FROM a_books_kyoboprice
		WHERE book_id = $1
		ORDER BY inputdate DESC, priceid DESC
		LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, isbn, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Price, error) {
		var p Price
		err := row.Scan(&p.ID, &p.BookISBN, &p.InputDate, &p.Price, &p.SalePrice, &p.Points, &p.URL)
		return p, err
	})
}

func (r *PostgresRepo) Averages(ctx context.Context, isbn string, limit int) ([]Average, error) {
	const query = `
		SELECT priceid, book_id, inputdate, averagerating, averageranking, averageweekranking
		FROM a_books_average
		WHERE book_id = $1
		ORDER BY inputdate DESC, priceid DESC
		LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, isbn, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Average, error) {
		var a Average
		err := row.Scan(&a.ID, &a.BookISBN, &a.InputDate, &a.Rating, &a.Ranking, &a.WeekRanking)
		return a, err
	})
}
