package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// Unique constraints on a_users_user.
const (
	ConstraintNickname = "a_users_user_nickname_key"
	ConstraintUsername = "a_users_user_username_key"
)

// User is an account. The identity columns (username through date_joined)
// belong to the login subsystem; the rest are reading preferences and
// counters kept by the application.
type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username" validate:"required,max=150"`
	Password    string     `json:"-"`
	Email       string     `json:"email" validate:"omitempty,email,max=254"`
	FirstName   string     `json:"first_name" validate:"max=150"`
	LastName    string     `json:"last_name" validate:"max=150"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	DateJoined  time.Time  `json:"date_joined"`

	Nickname             string               `json:"nickname" validate:"required,max=50"`
	ProfileImage         *string              `json:"profile_image,omitempty" validate:"omitempty,max=100"`
	PhoneNumber          string               `json:"phone_number" validate:"omitempty,max=11,numeric"`
	BirthDate            *time.Time           `json:"birth_date,omitempty"`
	FavoriteCategories   string               `json:"favorite_categories" validate:"max=100"`
	FavoriteAuthors      string               `json:"favorite_authors" validate:"max=200"`
	ReadingGoal          int                  `json:"reading_goal" validate:"gte=0"`
	ReadingCount         int                  `json:"reading_count" validate:"gte=0"`
	TotalReadingCount    int                  `json:"total_reading_count" validate:"gte=0"`
	NotificationSettings NotificationSettings `json:"notification_settings"`
	SocialLinks          SocialLinks          `json:"social_links"`
}

// String returns the nickname, or the username for accounts without one.
func (u User) String() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Counters are the reading tallies maintained outside this package.
type Counters struct {
	ReadingGoal       int `json:"reading_goal" validate:"gte=0"`
	ReadingCount      int `json:"reading_count" validate:"gte=0"`
	TotalReadingCount int `json:"total_reading_count" validate:"gte=0"`
}

// UpdateCommand is a partial profile update. Nil fields are left unchanged.
type UpdateCommand struct {
	Nickname             *string               `json:"nickname" validate:"omitempty,min=1,max=50"`
	ProfileImage         *string               `json:"profile_image" validate:"omitempty,max=100"`
	PhoneNumber          *string               `json:"phone_number" validate:"omitempty,max=11,numeric"`
	BirthDate            *time.Time            `json:"birth_date"`
	FavoriteCategories   *string               `json:"favorite_categories" validate:"omitempty,max=100"`
	FavoriteAuthors      *string               `json:"favorite_authors" validate:"omitempty,max=200"`
	NotificationSettings *NotificationSettings `json:"notification_settings"`
	SocialLinks          *SocialLinks          `json:"social_links"`
}

// ToMap returns the set fields keyed by column name. An empty profile image
// clears the stored reference.
func (c *UpdateCommand) ToMap() map[string]any {
	updates := make(map[string]any)
	if c.Nickname != nil {
		updates["nickname"] = *c.Nickname
	}
	if c.ProfileImage != nil {
		if *c.ProfileImage == "" {
			updates["profile_image"] = nil
		} else {
			updates["profile_image"] = *c.ProfileImage
		}
	}
	if c.PhoneNumber != nil {
		updates["phone_number"] = *c.PhoneNumber
	}
	if c.BirthDate != nil {
		updates["birth_date"] = *c.BirthDate
	}
	if c.FavoriteCategories != nil {
		updates["favorite_categories"] = *c.FavoriteCategories
	}
	if c.FavoriteAuthors != nil {
		updates["favorite_authors"] = *c.FavoriteAuthors
	}
	if c.NotificationSettings != nil {
		updates["notification_settings"] = *c.NotificationSettings
	}
	if c.SocialLinks != nil {
		updates["social_links"] = *c.SocialLinks
	}
	return updates
}
