package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ConstraintPrimaryKey is violated by a second book with the same ISBN.
const ConstraintPrimaryKey = "a_books_book_pkey"

// Book is a catalog record. Snapshots, reading statuses and activities all
// reference it by ISBN.
type Book struct {
	ISBN       string    `json:"isbn" validate:"required,len=13,isbn"`
	Title      string    `json:"title" validate:"required,max=255"`
	Author     string    `json:"author" validate:"required,max=255"`
	Publisher  string    `json:"publisher" validate:"required,max=255"`
	Publishing time.Time `json:"publishing"`
	CoverURL   string    `json:"coverurl" validate:"omitempty,url"`
	Category   string    `json:"category" validate:"required,max=20"`
}

func (b Book) String() string {
	return b.Title
}

// Query defines filters and pagination for listing books.
type Query struct {
	Category  string
	Author    string
	Publisher string
	Q         string
	Sort      string
	Desc      bool
	Limit     int
	Offset    int
}
