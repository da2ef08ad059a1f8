package readingstats

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=readingstats

type Repository interface {
	Create(ctx context.Context, s *Stats) error
	Get(ctx context.Context, userID int64) (Stats, error)
	Save(ctx context.Context, s *Stats) error
}
