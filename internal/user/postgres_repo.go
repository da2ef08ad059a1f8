package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/dberr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const selectColumns = `
	id, username, password, email, first_name, last_name, is_active, is_staff, is_superuser,
	last_login, date_joined, nickname, profile_image, phone_number, birth_date,
	favorite_categories, favorite_authors, reading_goal, reading_count, total_reading_count,
	notification_settings, social_links`

func scanUser(row pgx.Row) (User, error) {
	var u User
	var settings, links []byte
	err := row.Scan(
		&u.ID, &u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.LastLogin, &u.DateJoined,
		&u.Nickname, &u.ProfileImage, &u.PhoneNumber, &u.BirthDate,
		&u.FavoriteCategories, &u.FavoriteAuthors,
		&u.ReadingGoal, &u.ReadingCount, &u.TotalReadingCount,
		&settings, &links,
	)
	if err != nil {
		return User{}, err
	}
	if err := json.Unmarshal(settings, &u.NotificationSettings); err != nil {
		return User{}, fmt.Errorf("decode notification_settings of user %d: %w", u.ID, err)
	}
	if err := json.Unmarshal(links, &u.SocialLinks); err != nil {
		return User{}, fmt.Errorf("decode social_links of user %d: %w", u.ID, err)
	}
	return u, nil
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO a_users_user (
		username, password, email, first_name, last_name, is_active, is_staff, is_superuser,
		date_joined, nickname, profile_image, phone_number, birth_date,
		favorite_categories, favorite_authors, reading_goal, reading_count, total_reading_count,
		notification_settings, social_links
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, NOW()), $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	RETURNING id, date_joined
	`
	settings, err := json.Marshal(u.NotificationSettings)
	if err != nil {
		return err
	}
	links, err := json.Marshal(u.SocialLinks)
	if err != nil {
		return err
	}
	var joined *time.Time
	if !u.DateJoined.IsZero() {
		joined = &u.DateJoined
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, query,
		u.Username, u.Password, u.Email, u.FirstName, u.LastName, u.IsActive, u.IsStaff, u.IsSuperuser,
		joined, u.Nickname, u.ProfileImage, u.PhoneNumber, u.BirthDate,
		u.FavoriteCategories, u.FavoriteAuthors, u.ReadingGoal, u.ReadingCount, u.TotalReadingCount,
		settings, links,
	).Scan(&u.ID, &u.DateJoined)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.Username, dberr.Wrap(err))
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (User, error) {
	query := `SELECT ` + selectColumns + ` FROM a_users_user WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	u, err := scanUser(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) GetByNickname(ctx context.Context, nickname string) (User, error) {
	query := `SELECT ` + selectColumns + ` FROM a_users_user WHERE nickname = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	u, err := scanUser(r.db.QueryRow(timeoutCtx, query, nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) UpdateProfile(ctx context.Context, userID int64, updates map[string]any) error {
	fields := []string{}
	args := []any{}
	argn := 1

	for key, value := range updates {
		switch key {
		case "nickname", "profile_image", "phone_number", "favorite_categories", "favorite_authors":
		case "birth_date":
			if t, ok := value.(time.Time); ok {
				value = clock.Date(t)
			}
		case "notification_settings", "social_links":
			raw, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encode %s: %w", key, err)
			}
			value = raw
		default:
			continue
		}
		fields = append(fields, key+" = $"+strconv.Itoa(argn))
		args = append(args, value)
		argn++
	}

	if len(fields) == 0 {
		return nil
	}
	args = append(args, userID)

	query := "UPDATE a_users_user SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argn)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return fmt.Errorf("update user %d: %w", userID, dberr.Wrap(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) UpdateCounters(ctx context.Context, userID int64, c Counters) error {
	const query = `
	UPDATE a_users_user
	SET reading_goal = $2, reading_count = $3, total_reading_count = $4
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, userID, c.ReadingGoal, c.ReadingCount, c.TotalReadingCount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the account together with its reading statuses, stats and
// activity log.
func (r *PostgresRepo) Delete(ctx context.Context, userID int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM a_users_user WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
