package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=user

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (User, error)
	GetByNickname(ctx context.Context, nickname string) (User, error)
	UpdateProfile(ctx context.Context, userID int64, updates map[string]any) error
	UpdateCounters(ctx context.Context, userID int64, c Counters) error
	Delete(ctx context.Context, userID int64) error
}
