// Package profile assembles what a reader's page shows: the account, its
// reading stats, how many books sit on each shelf and the latest activity.
package profile

import (
	"bookshelf/internal/activity"
	"bookshelf/internal/readinglist"
	"bookshelf/internal/readingstats"
	"bookshelf/internal/user"
)

type Profile struct {
	User           user.User                  `json:"user"`
	Stats          *readingstats.Stats        `json:"stats"`
	Shelf          map[readinglist.Status]int `json:"shelf"`
	RecentActivity []activity.Activity        `json:"recent_activity"`
}
