// Package fusionrule implements the precomputed fusion rule repository
// using PostgreSQL.
package fusionrule

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Repo provides fusion rule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new fusion rule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ruleColumns = `id, word_a_id, word_b_id, result, meaning, type,
	example, icon, concept, suggested_words, association`

// GetByPair returns the rule for a word pair. Callers pass the pair sorted;
// rows are stored sorted so a single probe suffices.
func (r *Repo) GetByPair(ctx context.Context, wordAID, wordBID string) (*domain.FusionRule, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+ruleColumns+" FROM fusion_rules WHERE word_a_id = $1 AND word_b_id = $2",
		wordAID, wordBID)

	rule, err := scanRule(row)
	if err != nil {
		return nil, postgres.MapError(err, "fusion rule", wordAID+"+"+wordBID)
	}
	return &rule, nil
}

// GetByID returns a rule by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.FusionRule, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+ruleColumns+" FROM fusion_rules WHERE id = $1", id)

	rule, err := scanRule(row)
	if err != nil {
		return nil, postgres.MapError(err, "fusion rule", id)
	}
	return &rule, nil
}

// ListByTheme returns all rules whose first word belongs to the theme,
// ordered by rule id for stable output.
func (r *Repo) ListByTheme(ctx context.Context, themeID string) ([]domain.FusionRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM fusion_rules
		JOIN words ON words.id = fusion_rules.word_a_id
		WHERE words.theme_id = $1
		ORDER BY fusion_rules.id ASC`,
		themeID)
	if err != nil {
		return nil, fmt.Errorf("list rules by theme: %w", err)
	}
	defer rows.Close()

	rules := make([]domain.FusionRule, 0, 16)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fusion rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fusion rules: %w", err)
	}
	return rules, nil
}

// Upsert inserts or updates a rule, keyed by id. The pair must already be
// sorted; the sorted check constraint rejects it otherwise. Used by the
// seeder.
func (r *Repo) Upsert(ctx context.Context, rule domain.FusionRule) error {
	suggested, err := encodeSuggested(rule.SuggestedWords)
	if err != nil {
		return fmt.Errorf("encode suggested words: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO fusion_rules
			(id, word_a_id, word_b_id, result, meaning, type,
			 example, icon, concept, suggested_words, association)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			word_a_id = EXCLUDED.word_a_id,
			word_b_id = EXCLUDED.word_b_id,
			result = EXCLUDED.result,
			meaning = EXCLUDED.meaning,
			type = EXCLUDED.type,
			example = EXCLUDED.example,
			icon = EXCLUDED.icon,
			concept = EXCLUDED.concept,
			suggested_words = EXCLUDED.suggested_words,
			association = EXCLUDED.association`,
		rule.ID, rule.WordAID, rule.WordBID, rule.Result, rule.Meaning,
		rule.Type.String(), rule.Example, rule.Icon, rule.Concept,
		suggested, rule.Association,
	)
	if err != nil {
		return postgres.MapError(err, "fusion rule", rule.ID)
	}
	return nil
}

func scanRule(row pgx.Row) (domain.FusionRule, error) {
	var (
		rule      domain.FusionRule
		ruleType  string
		suggested []byte
	)
	err := row.Scan(
		&rule.ID, &rule.WordAID, &rule.WordBID, &rule.Result, &rule.Meaning,
		&ruleType, &rule.Example, &rule.Icon, &rule.Concept, &suggested,
		&rule.Association,
	)
	if err != nil {
		return domain.FusionRule{}, err
	}
	rule.Type = domain.NormalizeFusionType(ruleType)
	if len(suggested) > 0 {
		if err := json.Unmarshal(suggested, &rule.SuggestedWords); err != nil {
			return domain.FusionRule{}, fmt.Errorf("decode suggested words: %w", err)
		}
	}
	return rule, nil
}

func encodeSuggested(words []string) ([]byte, error) {
	if len(words) == 0 {
		return nil, nil
	}
	return json.Marshal(words)
}
