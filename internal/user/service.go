package user

import (
	"context"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/crypto"
	"bookshelf/internal/platform/validate"
)

// RegisterInput carries what a new account needs.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Nickname  string `json:"nickname" validate:"required,max=50"`
}

type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, c clock.Clock) *Service {
	if c == nil {
		c = clock.System{}
	}
	return &Service{repo: repo, clock: c}
}

// Register creates an active account with a hashed password, zero counters
// and empty settings. A taken nickname or username fails with a uniqueness
// violation naming ConstraintNickname or ConstraintUsername.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	var strengthErr error
	if in.Password != "" {
		if err := crypto.ValidatePasswordStrength(in.Password); err != nil {
			strengthErr = validate.Field("password", err.Error())
		}
	}
	if err := validate.Join(validate.Struct(in), strengthErr); err != nil {
		return User{}, err
	}

	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}

	newUser := &User{
		Username:   in.Username,
		Password:   hash,
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		IsActive:   true,
		DateJoined: s.clock.Now(),
		Nickname:   in.Nickname,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

// Create stores a fully populated account, for callers that bring their own
// password hash.
func (s *Service) Create(ctx context.Context, u *User) error {
	if err := validate.Struct(u); err != nil {
		return err
	}
	if u.DateJoined.IsZero() {
		u.DateJoined = s.clock.Now()
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNickname(ctx context.Context, nickname string) (User, error) {
	return s.repo.GetByNickname(ctx, nickname)
}

// UpdateProfile applies the set fields of cmd and returns the stored user.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, cmd UpdateCommand) (User, error) {
	if err := validate.Struct(cmd); err != nil {
		return User{}, err
	}
	if err := s.repo.UpdateProfile(ctx, userID, cmd.ToMap()); err != nil {
		return User{}, err
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateCounters(ctx context.Context, userID int64, c Counters) error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return s.repo.UpdateCounters(ctx, userID, c)
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}
