package snapshot

import (
	"context"
	"time"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/validate"
)

const (
	defaultHistory = 30
	maxHistory     = 366
)

// Service records snapshots. A snapshot without an input date is stamped
// with the clock's calendar day when it is written.
type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, c clock.Clock) *Service {
	if c == nil {
		c = clock.System{}
	}
	return &Service{repo: repo, clock: c}
}

func (s *Service) inputDate(t time.Time) time.Time {
	if t.IsZero() {
		return clock.Today(s.clock)
	}
	return clock.Date(t)
}

func historyLimit(limit int) int {
	if limit <= 0 {
		return defaultHistory
	}
	if limit > maxHistory {
		return maxHistory
	}
	return limit
}

func (s *Service) RecordRanking(ctx context.Context, r *Ranking) error {
	if err := validate.Join(
		validate.Struct(r),
		validate.Decimal("kyoborating", r.Rating, ratingPrecision, ratingScale),
	); err != nil {
		return err
	}
	r.InputDate = s.inputDate(r.InputDate)
	r.Rating = r.Rating.Round(ratingScale)
	return s.repo.InsertRanking(ctx, r)
}

func (s *Service) RecordPrice(ctx context.Context, p *Price) error {
	if err := validate.Join(
		validate.Struct(p),
		validate.Decimal("kyoboprice", p.Price, moneyPrecision, moneyScale),
		validate.Decimal("kyobosaleprice", p.SalePrice, moneyPrecision, moneyScale),
	); err != nil {
		return err
	}
	p.InputDate = s.inputDate(p.InputDate)
	p.Price = p.Price.Round(moneyScale)
	p.SalePrice = p.SalePrice.Round(moneyScale)
	return s.repo.InsertPrice(ctx, p)
}

func (s *Service) RecordAverage(ctx context.Context, a *Average) error {
	if err := validate.Join(
		validate.Struct(a),
		validate.Decimal("averagerating", a.Rating, ratingPrecision, ratingScale),
		validate.Decimal("averageranking", a.Ranking, ratingPrecision, ratingScale),
	); err != nil {
		return err
	}
	a.InputDate = s.inputDate(a.InputDate)
	a.Rating = a.Rating.Round(ratingScale)
	a.Ranking = a.Ranking.Round(ratingScale)
	return s.repo.InsertAverage(ctx, a)
}

// Rankings returns the book's ranking history, newest first.
func (s *Service) Rankings(ctx context.Context, isbn string, limit int) ([]Ranking, error) {
	return s.repo.Rankings(ctx, isbn, historyLimit(limit))
}

func (s *Service) Prices(ctx context.Context, isbn string, limit int) ([]Price, error) {
	return s.repo.Prices(ctx, isbn, historyLimit(limit))
}

func (s *Service) Averages(ctx context.Context, isbn string, limit int) ([]Average, error) {
	return s.repo.Averages(ctx, isbn, historyLimit(limit))
}

func (s *Service) LatestRanking(ctx context.Context, isbn string) (Ranking, error) {
	rows, err := s.repo.Rankings(ctx, isbn, 1)
	if err != nil {
		return Ranking{}, err
	}
	if len(rows) == 0 {
		return Ranking{}, ErrNotFound
	}
	return rows[0], nil
}

func (s *Service) LatestPrice(ctx context.Context, isbn string) (Price, error) {
	rows, err := s.repo.Prices(ctx, isbn, 1)
	if err != nil {
		return Price{}, err
	}
	if len(rows) == 0 {
		return Price{}, ErrNotFound
	}
	return rows[0], nil
}

func (s *Service) LatestAverage(ctx context.Context, isbn string) (Average, error) {
	rows, err := s.repo.Averages(ctx, isbn, 1)
	if err != nil {
		return Average{}, err
	}
	if len(rows) == 0 {
		return Average{}, ErrNotFound
	}
	return rows[0], nil
}
