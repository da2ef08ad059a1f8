// Package activity is the append-only log of what users do with books.
// Entries are stamped when written and never updated afterwards.
package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/platform/jsonx"
)

// Foreign keys of a_users_useractivity. Deleting a book clears the book on
// its activities instead of removing them.
const (
	ConstraintUser = "a_users_useractivity_user_fk"
	ConstraintBook = "a_users_useractivity_book_fk"
)

// Type says what happened.
type Type string

const (
	TypeReview      Type = "review"
	TypeRating      Type = "rating"
	TypeComplete    Type = "complete"
	TypeStart       Type = "start"
	TypeGoalAchieve Type = "goal_achieve"
)

var ErrInvalidType = errors.New("invalid activity type")

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeReview, TypeRating, TypeComplete, TypeStart, TypeGoalAchieve:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

func (t Type) Valid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

func (t Type) String() string { return string(t) }

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(t))
	}
	return []byte(t), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Details is the payload stored in the details column. Which fields are set
// depends on the Type: Rating for ratings, Review for reviews, Goal and
// Count for goal_achieve. Other keys survive in Extra.
type Details struct {
	Rating *int                       `json:"rating,omitempty"`
	Review string                     `json:"review,omitempty"`
	Goal   *int                       `json:"goal,omitempty"`
	Count  *int                       `json:"count,omitempty"`
	Note   string                     `json:"note,omitempty"`
	Extra  map[string]json.RawMessage `json:"-"`
}

func (d Details) MarshalJSON() ([]byte, error) {
	type plain Details
	return jsonx.MarshalWithExtra(plain(d), d.Extra)
}

func (d *Details) UnmarshalJSON(data []byte) error {
	type plain Details
	var p plain
	extra, err := jsonx.UnmarshalWithExtra(data, &p, "rating", "review", "goal", "count", "note")
	if err != nil {
		return err
	}
	*d = Details(p)
	d.Extra = extra
	return nil
}

type Activity struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user" validate:"required"`
	Type      Type      `json:"activity_type"`
	BookISBN  *string   `json:"book" validate:"omitempty,len=13"`
	CreatedAt time.Time `json:"created_at"`
	Details   Details   `json:"details"`
}
