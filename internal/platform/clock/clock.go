// Package clock supplies the "now" that write-time defaults are computed from.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock, seen from Location (UTC when nil).
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Date keeps the calendar day of t, as seen in t's location, at midnight UTC.
// That is the form pgx returns for DATE columns.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the calendar day of c.Now().
func Today(c Clock) time.Time {
	return Date(c.Now())
}
