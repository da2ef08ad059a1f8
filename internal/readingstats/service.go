package readingstats

import (
	"context"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a zeroed record for the user. A second call for the same
// user fails with a uniqueness violation on ConstraintUserUnique.
func (s *Service) Create(ctx context.Context, userID int64) (Stats, error) {
	st := Stats{UserID: userID}
	if err := validate.Struct(st); err != nil {
		return Stats{}, err
	}
	if err := s.repo.Create(ctx, &st); err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (Stats, error) {
	return s.repo.Get(ctx, userID)
}

// Save overwrites every accumulator with the values in st.
func (s *Service) Save(ctx context.Context, st *Stats) error {
	if err := validate.Struct(st); err != nil {
		return err
	}
	if st.LastReadDate != nil {
		d := clock.Date(*st.LastReadDate)
		st.LastReadDate = &d
	}
	return s.repo.Save(ctx, st)
}
