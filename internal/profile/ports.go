package profile

import (
	"context"

	"bookshelf/internal/activity"
	"bookshelf/internal/readinglist"
	"bookshelf/internal/readingstats"
	"bookshelf/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=profile

type Users interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
	GetByNickname(ctx context.Context, nickname string) (user.User, error)
	UpdateProfile(ctx context.Context, userID int64, cmd user.UpdateCommand) (user.User, error)
}

type Stats interface {
	Get(ctx context.Context, userID int64) (readingstats.Stats, error)
}

type Shelf interface {
	CountByStatus(ctx context.Context, userID int64) (map[readinglist.Status]int, error)
}

type Activities interface {
	ListByUser(ctx context.Context, userID int64, cursor string, limit int) ([]activity.Activity, string, error)
}
