package readinglist

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
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func checkStatus(s Status) error {
	if !s.Valid() {
		return validate.Field("status", "status must be one of reading, completed, want_to_read")
	}
	return nil
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := clock.Date(*t)
	return &d
}

// Add puts a book on the user's shelf. A second entry for the same book
// fails with a uniqueness violation on ConstraintUserBook.
func (s *Service) Add(ctx context.Context, in AddInput) (Entry, error) {
	if in.Status == "" {
		in.Status = StatusWantToRead
	}
	if err := validate.Join(validate.Struct(in), checkStatus(in.Status)); err != nil {
		return Entry{}, err
	}

	e := &Entry{
		UserID:    in.UserID,
		BookISBN:  in.BookISBN,
		Status:    in.Status,
		StartDate: dateOnly(in.StartDate),
		EndDate:   dateOnly(in.EndDate),
		Rating:    in.Rating,
		Review:    in.Review,
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return Entry{}, err
	}
	return *e, nil
}

func (s *Service) Get(ctx context.Context, userID int64, isbn string) (Entry, error) {
	return s.repo.Get(ctx, userID, isbn)
}

// Update overwrites status, dates, rating and review. Any status may follow
// any other.
func (s *Service) Update(ctx context.Context, e *Entry) error {
	if err := validate.Join(validate.Struct(e), checkStatus(e.Status)); err != nil {
		return err
	}
	e.StartDate = dateOnly(e.StartDate)
	e.EndDate = dateOnly(e.EndDate)
	return s.repo.Update(ctx, e)
}

// List returns the user's entries, newest first, optionally for one status.
func (s *Service) List(ctx context.Context, userID int64, status *Status, limit, offset int) ([]Entry, int, error) {
	if status != nil {
		if err := checkStatus(*status); err != nil {
			return nil, 0, err
		}
	}
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, userID, status, limit, offset)
}

// CountByStatus reports how many entries the user has per status. Every
// status is present in the result.
func (s *Service) CountByStatus(ctx context.Context, userID int64) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID int64, isbn string) error {
	return s.repo.Delete(ctx, userID, isbn)
}
