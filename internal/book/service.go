package book

import (
	"context"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func prepare(b *Book) error {
	var dateErr error
	if b.Publishing.IsZero() {
		dateErr = validate.Field("publishing", "publishing is required")
	}
	if err := validate.Join(validate.Struct(b), dateErr); err != nil {
		return err
	}
	b.Publishing = clock.Date(b.Publishing)
	return nil
}

// Create adds a new book. A second book with the same ISBN fails with a
// uniqueness violation.
func (s *Service) Create(ctx context.Context, b *Book) error {
	if err := prepare(b); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

// Upsert inserts the book or refreshes the stored catalog fields.
func (s *Service) Upsert(ctx context.Context, b *Book) error {
	if err := prepare(b); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, b)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// List returns a page of books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	if q.Limit <= 0 || q.Limit > maxPageSize {
		q.Limit = defaultPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return s.repo.List(ctx, q)
}

// Delete removes a book and everything that cascades from it.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}
