package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	Upsert(ctx context.Context, b *Book) error
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
	Delete(ctx context.Context, isbn string) error
}
