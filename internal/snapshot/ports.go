package snapshot

import (
	"context"
)

// Repository stores snapshots. List methods return at most limit rows for the
// book ordered by inputdate, then id, both descending.
type Repository interface {
	InsertRanking(ctx context.Context, r *Ranking) error
	InsertPrice(ctx context.Context, p *Price) error
	InsertAverage(ctx context.Context, a *Average) error
	Rankings(ctx context.Context, isbn string, limit int) ([]Ranking, error)
	Prices(ctx context.Context, isbn string, limit int) ([]Price, error)
	Averages(ctx context.Context, isbn string, limit int) ([]Average, error)
}
