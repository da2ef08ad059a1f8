package readinglist

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("reading status not found")

// Constraints on a_users_readingstatus.
const (
	ConstraintUserBook = "a_users_readingstatus_user_book_key"
	ConstraintUser     = "a_users_readingstatus_user_fk"
	ConstraintBook     = "a_users_readingstatus_book_fk"
)

// Entry is a user's status for one book. Dates and rating are stored as
// given, whatever the status.
type Entry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user" validate:"required"`
	BookISBN  string     `json:"book" validate:"required,len=13"`
	Status    Status     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Rating    *int       `json:"rating,omitempty"`
	Review    string     `json:"review"`
}

// AddInput creates an Entry. An empty Status means StatusWantToRead.
type AddInput struct {
	UserID    int64      `json:"user" validate:"required"`
	BookISBN  string     `json:"book" validate:"required,len=13"`
	Status    Status     `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Rating    *int       `json:"rating"`
	Review    string     `json:"review"`
}
