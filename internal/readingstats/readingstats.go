// Package readingstats keeps the one accumulator row each user has for
// pages, minutes and streaks. The values are computed elsewhere and written
// here as a whole.
package readingstats

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("reading stats not found")

// Constraints on a_users_readingstats. The table is keyed by user, so its
// primary key is what rejects a second row for the same user.
const (
	ConstraintUserUnique = "a_users_readingstats_pkey"
	ConstraintUser       = "a_users_readingstats_user_fk"
)

type Stats struct {
	UserID           int64      `json:"user" validate:"required"`
	TotalPagesRead   int        `json:"total_pages_read" validate:"gte=0"`
	TotalReadingTime int        `json:"total_reading_time" validate:"gte=0"` // minutes
	FavoriteGenre    string     `json:"favorite_genre" validate:"max=50"`
	ReadingStreak    int        `json:"reading_streak" validate:"gte=0"` // consecutive days
	LastReadDate     *time.Time `json:"last_read_date,omitempty"`
}
