// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = "id, device_id, nickname, email, created_at, last_active_at"

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return &u, nil
}

// GetByDeviceID returns the user registered for a device.
func (r *Repo) GetByDeviceID(ctx context.Context, deviceID string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE device_id = $1", deviceID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", deviceID)
	}
	return &u, nil
}

// Create registers a device and returns the new user. A concurrent
// registration of the same device surfaces as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"INSERT INTO users (device_id) VALUES ($1) RETURNING "+userColumns,
		user.DeviceID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", user.DeviceID)
	}
	return &u, nil
}

// UpdateProfile sets nickname and email; nil keeps the current value and a
// pointer to the empty string clears the column.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, nickname, email *string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET nickname = CASE
				WHEN $2::text IS NULL THEN nickname
				WHEN $2::text = '' THEN NULL
				ELSE $2::text
			END,
			email = CASE
				WHEN $3::text IS NULL THEN email
				WHEN $3::text = '' THEN NULL
				ELSE $3::text
			END
		WHERE id = $1
		RETURNING `+userColumns,
		id, nickname, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return &u, nil
}

// TouchLastActive bumps the user's last activity timestamp.
func (r *Repo) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE users SET last_active_at = now() WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.DeviceID, &u.Nickname, &u.Email, &u.CreatedAt, &u.LastActiveAt)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
