// Package discovery implements the user discovery log repository using
// PostgreSQL.
package discovery

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Repo provides discovery persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new discovery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const discoveryColumns = `id, user_id, word_a_id, word_b_id, fusion_rule_id,
	is_creative, creative_data, is_favorite, created_at`

// GetByID returns a discovery by id, scoped to its owner.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Discovery, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+discoveryColumns+" FROM discoveries WHERE id = $1 AND user_id = $2",
		id, userID)

	d, err := scanDiscovery(row)
	if err != nil {
		return nil, postgres.MapError(err, "discovery", id.String())
	}
	return &d, nil
}

// GetByPair returns the user's discovery for a sorted word pair.
func (r *Repo) GetByPair(ctx context.Context, userID uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+discoveryColumns+`
		FROM discoveries
		WHERE user_id = $1 AND word_a_id = $2 AND word_b_id = $3`,
		userID, wordAID, wordBID)

	d, err := scanDiscovery(row)
	if err != nil {
		return nil, postgres.MapError(err, "discovery", wordAID+"+"+wordBID)
	}
	return &d, nil
}

// Create inserts a new discovery and returns it with generated fields.
// A concurrent insert of the same pair surfaces as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO discoveries
			(user_id, word_a_id, word_b_id, fusion_rule_id, is_creative, creative_data, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+discoveryColumns,
		d.UserID, d.WordAID, d.WordBID, d.FusionRuleID, d.IsCreative,
		d.CreativeData, d.IsFavorite)

	created, err := scanDiscovery(row)
	if err != nil {
		return nil, postgres.MapError(err, "discovery", d.WordAID+"+"+d.WordBID)
	}
	return &created, nil
}

// ListByUser returns the user's discoveries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error) {
	return r.list(ctx, `
		SELECT `+discoveryColumns+`
		FROM discoveries
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
}

// ListFavorites returns the user's favorited discoveries, newest first.
func (r *Repo) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error) {
	return r.list(ctx, `
		SELECT `+discoveryColumns+`
		FROM discoveries
		WHERE user_id = $1 AND is_favorite
		ORDER BY created_at DESC`,
		userID)
}

// SetFavorite updates the favorite flag on the user's discovery.
func (r *Repo) SetFavorite(ctx context.Context, userID, id uuid.UUID, favorite bool) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE discoveries SET is_favorite = $1 WHERE id = $2 AND user_id = $3",
		favorite, id, userID)
	if err != nil {
		return postgres.MapError(err, "discovery", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: discovery %s", domain.ErrNotFound, id)
	}
	return nil
}

// CountByUser returns the user's total discovery count.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT count(*) FROM discoveries WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count discoveries: %w", err)
	}
	return count, nil
}

// CountFavorites returns the user's favorite count.
func (r *Repo) CountFavorites(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT count(*) FROM discoveries WHERE user_id = $1 AND is_favorite", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}

func (r *Repo) list(ctx context.Context, query string, userID uuid.UUID) ([]domain.Discovery, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list discoveries: %w", err)
	}
	defer rows.Close()

	discoveries := make([]domain.Discovery, 0, 16)
	for rows.Next() {
		d, err := scanDiscovery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan discovery: %w", err)
		}
		discoveries = append(discoveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discoveries: %w", err)
	}
	return discoveries, nil
}

func scanDiscovery(row pgx.Row) (domain.Discovery, error) {
	var d domain.Discovery
	err := row.Scan(
		&d.ID, &d.UserID, &d.WordAID, &d.WordBID, &d.FusionRuleID,
		&d.IsCreative, &d.CreativeData, &d.IsFavorite, &d.CreatedAt,
	)
	if err != nil {
		return domain.Discovery{}, err
	}
	return d, nil
}
