package activity

import (
	"context"
)

// Repository lists newest first: created_at, then id, descending.
type Repository interface {
	Insert(ctx context.Context, a *Activity) error
	ListByUser(ctx context.Context, userID int64, after *Cursor, limit int) ([]Activity, error)
	ListByBook(ctx context.Context, isbn string, limit int) ([]Activity, error)
}
