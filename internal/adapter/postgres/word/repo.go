// Package word implements the catalog word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = "id, word, meaning, icon, category, theme_id"

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Word, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+wordColumns+" FROM words WHERE id = $1", id)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	return &w, nil
}

// Find searches the catalog with the dynamic filter. The query matches word
// text or meaning case-insensitively; results are ordered by word text.
func (r *Repo) Find(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	builder := psql.Select(wordColumns).From("words").OrderBy("word ASC")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"word": pattern},
			sq.ILike{"meaning": pattern},
		})
	}
	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": filter.Category.String()})
	}
	if filter.ThemeID != nil {
		builder = builder.Where(sq.Eq{"theme_id": *filter.ThemeID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// CountByCategory returns per-category word counts, largest first.
func (r *Repo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT category, count(*) FROM words GROUP BY category ORDER BY count(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("count words by category: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0, 8)
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, domain.CategoryCount{
			Category: domain.NormalizeCategory(category),
			Count:    count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}
	return counts, nil
}

// Random returns up to n distinct random words, optionally filtered by
// category. The catalog is small enough for ORDER BY random().
func (r *Repo) Random(ctx context.Context, category *domain.Category, n int) ([]domain.Word, error) {
	builder := psql.Select(wordColumns).From("words").
		OrderBy("random()").
		Limit(uint64(n))
	if category != nil {
		builder = builder.Where(sq.Eq{"category": category.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build random word query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pick random words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// Upsert inserts or updates a catalog word, keyed by id. Used by the seeder.
func (r *Repo) Upsert(ctx context.Context, w domain.Word) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO words (id, word, meaning, icon, category, theme_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			word = EXCLUDED.word,
			meaning = EXCLUDED.meaning,
			icon = EXCLUDED.icon,
			category = EXCLUDED.category,
			theme_id = EXCLUDED.theme_id`,
		w.ID, w.Word, w.Meaning, w.Icon, w.Category.String(), w.ThemeID,
	)
	if err != nil {
		return postgres.MapError(err, "word", w.ID)
	}
	return nil
}

func scanWord(row pgx.Row) (domain.Word, error) {
	var (
		w        domain.Word
		category string
	)
	if err := row.Scan(&w.ID, &w.Word, &w.Meaning, &w.Icon, &category, &w.ThemeID); err != nil {
		return domain.Word{}, err
	}
	w.Category = domain.NormalizeCategory(category)
	return w, nil
}

func collectWords(rows pgx.Rows) ([]domain.Word, error) {
	words := make([]domain.Word, 0, 16)
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}
