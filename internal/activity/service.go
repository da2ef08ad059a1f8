package activity

import (
	"context"
	"time"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

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

func pageSize(limit int) int {
	if limit <= 0 || limit > maxPageSize {
		return defaultPageSize
	}
	return limit
}

// Record appends a to the log. CreatedAt is always taken from the clock.
func (s *Service) Record(ctx context.Context, a *Activity) error {
	var typeErr error
	if !a.Type.Valid() {
		typeErr = validate.Field("activity_type", "activity_type must be one of review, rating, complete, start, goal_achieve")
	}
	if err := validate.Join(validate.Struct(a), typeErr); err != nil {
		return err
	}
	a.CreatedAt = s.clock.Now().Truncate(time.Microsecond)
	return s.repo.Insert(ctx, a)
}

// ListByUser returns one page of the user's log, newest first, and the
// cursor of the following page ("" on the last page).
func (s *Service) ListByUser(ctx context.Context, userID int64, cursor string, limit int) ([]Activity, string, error) {
	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	limit = pageSize(limit)

	items, err := s.repo.ListByUser(ctx, userID, after, limit+1)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(items) > limit {
		items = items[:limit]
		last := items[limit-1]
		next = EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return items, next, nil
}

// ListByBook returns the latest activities about a book, newest first.
func (s *Service) ListByBook(ctx context.Context, isbn string, limit int) ([]Activity, error) {
	return s.repo.ListByBook(ctx, isbn, pageSize(limit))
}
