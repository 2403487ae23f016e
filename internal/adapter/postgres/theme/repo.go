// Package theme implements the theme pack repository using PostgreSQL.
package theme

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Repo provides theme persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new theme repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const themeColumns = "id, name, name_en, description, cover_emoji, sort_order, is_active, created_at"

// ListActive returns active themes ordered by sort order, each with its
// word count and the count of rules rooted in its words.
func (r *Repo) ListActive(ctx context.Context) ([]domain.ThemeSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+themeColumns+`,
			(SELECT count(*) FROM words WHERE words.theme_id = themes.id),
			(SELECT count(*)
			 FROM fusion_rules
			 JOIN words ON words.id = fusion_rules.word_a_id
			 WHERE words.theme_id = themes.id)
		FROM themes
		WHERE is_active
		ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active themes: %w", err)
	}
	defer rows.Close()

	themes := make([]domain.ThemeSummary, 0, 8)
	for rows.Next() {
		var s domain.ThemeSummary
		err := rows.Scan(
			&s.ID, &s.Name, &s.NameEn, &s.Description, &s.CoverEmoji,
			&s.SortOrder, &s.IsActive, &s.CreatedAt,
			&s.WordCount, &s.FusionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan theme summary: %w", err)
		}
		themes = append(themes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate themes: %w", err)
	}
	return themes, nil
}

// GetByID returns a theme by primary key, active or not.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Theme, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+themeColumns+" FROM themes WHERE id = $1", id)

	t, err := scanTheme(row)
	if err != nil {
		return nil, postgres.MapError(err, "theme", id)
	}
	return &t, nil
}

// Upsert inserts or updates a theme, keyed by id. Used by the seeder.
func (r *Repo) Upsert(ctx context.Context, t domain.Theme) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO themes (id, name, name_en, description, cover_emoji, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			name_en = EXCLUDED.name_en,
			description = EXCLUDED.description,
			cover_emoji = EXCLUDED.cover_emoji,
			sort_order = EXCLUDED.sort_order,
			is_active = EXCLUDED.is_active`,
		t.ID, t.Name, t.NameEn, t.Description, t.CoverEmoji, t.SortOrder, t.IsActive,
	)
	if err != nil {
		return postgres.MapError(err, "theme", t.ID)
	}
	return nil
}

func scanTheme(row pgx.Row) (domain.Theme, error) {
	var t domain.Theme
	err := row.Scan(
		&t.ID, &t.Name, &t.NameEn, &t.Description, &t.CoverEmoji,
		&t.SortOrder, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		return domain.Theme{}, err
	}
	return t, nil
}
