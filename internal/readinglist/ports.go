package readinglist

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=readinglist

type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	Get(ctx context.Context, userID int64, isbn string) (Entry, error)
	Update(ctx context.Context, e *Entry) error
	List(ctx context.Context, userID int64, status *Status, limit, offset int) ([]Entry, int, error)
	CountByStatus(ctx context.Context, userID int64) (map[Status]int, error)
	Delete(ctx context.Context, userID int64, isbn string) error
}
