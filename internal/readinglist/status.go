package readinglist

import (
	"errors"
	"fmt"
)

// Status is where a book sits on a reader's shelf.
type Status string

const (
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
	StatusWantToRead Status = "want_to_read"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusReading, StatusCompleted, StatusWantToRead}

// ErrInvalidStatus is returned for any value outside Statuses.
var ErrInvalidStatus = errors.New("invalid reading status")

// ParseStatus accepts exactly the stored values.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusReading, StatusCompleted, StatusWantToRead:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
