package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser registers a user with a unique device id and returns the
// persisted domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{DeviceID: "device-" + uniqueSuffix()}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (device_id) VALUES ($1)
		 RETURNING id, created_at, last_active_at`,
		user.DeviceID,
	).Scan(&user.ID, &user.CreatedAt, &user.LastActiveAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTheme creates an active theme and returns it.
func SeedTheme(t *testing.T, pool *pgxpool.Pool) domain.Theme {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	theme := domain.Theme{
		ID:         "theme-" + suffix,
		Name:       "主题 " + suffix,
		NameEn:     "Theme " + suffix,
		CoverEmoji: "🌿",
		SortOrder:  0,
		IsActive:   true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO themes (id, name, name_en, cover_emoji, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		theme.ID, theme.Name, theme.NameEn, theme.CoverEmoji, theme.SortOrder, theme.IsActive,
	).Scan(&theme.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTheme insert theme: %v", err)
	}

	return theme
}

// SeedWord creates a catalog word with the given text and category,
// optionally bound to a theme (nil for no theme). Returns the persisted
// domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string, category domain.Category, themeID *string) domain.Word {
	t.Helper()
	ctx := context.Background()

	word := domain.Word{
		ID:       "w-" + text + "-" + uniqueSuffix(),
		Word:     text,
		Meaning:  "meaning of " + text,
		Icon:     "✨",
		Category: category,
		ThemeID:  themeID,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, word, meaning, icon, category, theme_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		word.ID, word.Word, word.Meaning, word.Icon, word.Category.String(), word.ThemeID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return word
}

// SeedRule creates a fusion rule for the two words, sorting the pair to
// satisfy the schema constraint. Returns the persisted domain.FusionRule.
func SeedRule(t *testing.T, pool *pgxpool.Pool, wordA, wordB domain.Word, result string) domain.FusionRule {
	t.Helper()
	ctx := context.Background()

	aID, bID := domain.SortPair(wordA.ID, wordB.ID)
	rule := domain.FusionRule{
		ID:      "rule-" + uniqueSuffix(),
		WordAID: aID,
		WordBID: bID,
		Result:  result,
		Meaning: "meaning of " + result,
		Type:    domain.FusionTypeCompound,
		Icon:    "🔗",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO fusion_rules (id, word_a_id, word_b_id, result, meaning, type, icon)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rule.ID, rule.WordAID, rule.WordBID, rule.Result, rule.Meaning, rule.Type.String(), rule.Icon,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRule insert fusion_rule: %v", err)
	}

	return rule
}

// SeedDiscovery records a rule-backed discovery for the user. The word pair
// is taken from the rule so it is already sorted.
func SeedDiscovery(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, rule domain.FusionRule) domain.Discovery {
	t.Helper()
	ctx := context.Background()

	d := domain.Discovery{
		UserID:       userID,
		WordAID:      rule.WordAID,
		WordBID:      rule.WordBID,
		FusionRuleID: &rule.ID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO discoveries (user_id, word_a_id, word_b_id, fusion_rule_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_creative, is_favorite, created_at`,
		d.UserID, d.WordAID, d.WordBID, d.FusionRuleID,
	).Scan(&d.ID, &d.IsCreative, &d.IsFavorite, &d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDiscovery insert discovery: %v", err)
	}

	return d
}
