package profile

import (
	"context"
	"errors"

	"bookshelf/internal/readingstats"
	"bookshelf/internal/user"
)

const defaultRecent = 10

type Service struct {
	users      Users
	stats      Stats
	shelf      Shelf
	activities Activities
	recent     int
}

// NewService wires the readers a profile is built from. recent is the number
// of activities included; zero or less uses the default.
func NewService(users Users, stats Stats, shelf Shelf, activities Activities, recent int) *Service {
	if recent <= 0 {
		recent = defaultRecent
	}
	return &Service{
		users:      users,
		stats:      stats,
		shelf:      shelf,
		activities: activities,
		recent:     recent,
	}
}

// Get returns the profile of a user. Stats is nil when the user has no
// stats row yet.
func (s *Service) Get(ctx context.Context, userID int64) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

func (s *Service) GetByNickname(ctx context.Context, nickname string) (Profile, error) {
	u, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

// UpdateProfile applies cmd to the account and returns the refreshed profile.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, cmd user.UpdateCommand) (Profile, error) {
	u, err := s.users.UpdateProfile(ctx, userID, cmd)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

func (s *Service) build(ctx context.Context, u user.User) (Profile, error) {
	p := Profile{User: u}

	st, err := s.stats.Get(ctx, u.ID)
	switch {
	case err == nil:
		p.Stats = &st
	case errors.Is(err, readingstats.ErrNotFound):
	default:
		return Profile{}, err
	}

	if p.Shelf, err = s.shelf.CountByStatus(ctx, u.ID); err != nil {
		return Profile{}, err
	}

	if p.RecentActivity, _, err = s.activities.ListByUser(ctx, u.ID, "", s.recent); err != nil {
		return Profile{}, err
	}
	return p, nil
}
