package fusion

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleResult() domain.FusionResult {
	return domain.FusionResult{
		ID:         "rule-1",
		From:       [2]string{"w-flower", "w-sun"},
		Result:     "sunflower",
		Meaning:    "向日葵",
		Type:       domain.FusionTypeCompound,
		Icon:       "🌻",
		IsCreative: false,
	}
}

func creativeResult() domain.FusionResult {
	concept := "太阳与花的融合——自然与自然"
	return domain.FusionResult{
		ID:             "creative-w-flower+w-sun",
		From:           [2]string{"w-flower", "w-sun"},
		Result:         "weather",
		Meaning:        concept,
		Type:           domain.FusionTypeCreative,
		Icon:           "✨",
		Concept:        &concept,
		SuggestedWords: []string{"weather", "landscape"},
		IsCreative:     true,
	}
}

func TestRecordDiscovery_RuleBacked(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var created *domain.Discovery
	repo := &mockDiscoveryRepo{
		CreateFunc: func(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
			d.ID = uuid.New()
			created = d
			return d, nil
		},
	}
	svc := newTestService(nil, nil, repo)

	// Reversed pair order must be stored sorted.
	_, err := svc.RecordDiscovery(context.Background(), userID, "w-sun", "w-flower", ruleResult())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "w-flower", created.WordAID)
	assert.Equal(t, "w-sun", created.WordBID)
	assert.False(t, created.IsCreative)
	require.NotNil(t, created.FusionRuleID)
	assert.Equal(t, "rule-1", *created.FusionRuleID)
	assert.Nil(t, created.CreativeData)
}

func TestRecordDiscovery_CreativeSnapshot(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var created *domain.Discovery
	repo := &mockDiscoveryRepo{
		CreateFunc: func(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
			d.ID = uuid.New()
			created = d
			return d, nil
		},
	}
	svc := newTestService(nil, nil, repo)

	_, err := svc.RecordDiscovery(context.Background(), userID, "w-flower", "w-sun", creativeResult())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, created.IsCreative)
	assert.Nil(t, created.FusionRuleID)
	require.NotEmpty(t, created.CreativeData)

	restored, err := decodeSnapshot(created.CreativeData)
	require.NoError(t, err)
	assert.Equal(t, creativeResult(), restored)
}

func TestRecordDiscovery_Idempotent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	existing := &domain.Discovery{ID: uuid.New(), UserID: userID, WordAID: "w-flower", WordBID: "w-sun"}
	createCalled := false
	repo := &mockDiscoveryRepo{
		GetByPairFunc: func(ctx context.Context, uid uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error) {
			return existing, nil
		},
		CreateFunc: func(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
			createCalled = true
			return d, nil
		},
	}
	svc := newTestService(nil, nil, repo)

	got, err := svc.RecordDiscovery(context.Background(), userID, "w-sun", "w-flower", ruleResult())
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.False(t, createCalled)
}

func TestRecordDiscovery_CreateRaceReturnsWinner(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	winner := &domain.Discovery{ID: uuid.New(), UserID: userID, WordAID: "w-flower", WordBID: "w-sun"}
	lookups := 0
	repo := &mockDiscoveryRepo{
		GetByPairFunc: func(ctx context.Context, uid uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error) {
			lookups++
			if lookups == 1 {
				return nil, domain.ErrNotFound
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(nil, nil, repo)

	got, err := svc.RecordDiscovery(context.Background(), userID, "w-sun", "w-flower", ruleResult())
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestListDiscoveries_MixedContent(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ruleID := "rule-1"
	snapshot, err := encodeSnapshot(creativeResult())
	require.NoError(t, err)

	now := time.Now()
	ruleBacked := domain.Discovery{
		ID: uuid.New(), UserID: userID,
		WordAID: "w-flower", WordBID: "w-sun",
		FusionRuleID: &ruleID, IsFavorite: true, CreatedAt: now,
	}
	creative := domain.Discovery{
		ID: uuid.New(), UserID: userID,
		WordAID: "w-cat", WordBID: "w-rain",
		IsCreative: true, CreativeData: snapshot, CreatedAt: now.Add(-time.Hour),
	}

	rules := &mockRuleRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.FusionRule, error) {
			require.Equal(t, ruleID, id)
			return &domain.FusionRule{
				ID: ruleID, WordAID: "w-flower", WordBID: "w-sun",
				Result: "sunflower", Meaning: "向日葵",
				Type: domain.FusionTypeCompound, Icon: "🌻",
			}, nil
		},
	}
	repo := &mockDiscoveryRepo{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]domain.Discovery, error) {
			return []domain.Discovery{ruleBacked, creative}, nil
		},
	}
	svc := newTestService(rules, nil, repo)

	views, err := svc.ListDiscoveries(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, ruleBacked.ID, views[0].DiscoveryID)
	assert.Equal(t, "sunflower", views[0].Fusion.Result)
	assert.False(t, views[0].Fusion.IsCreative)
	assert.True(t, views[0].IsFavorite)

	assert.Equal(t, creative.ID, views[1].DiscoveryID)
	assert.Equal(t, "weather", views[1].Fusion.Result)
	assert.True(t, views[1].Fusion.IsCreative)
}

func TestListDiscoveries_SkipsUnreadableRows(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	missingRule := "rule-gone"
	rows := []domain.Discovery{
		{ID: uuid.New(), UserID: userID, FusionRuleID: &missingRule},
		{ID: uuid.New(), UserID: userID, IsCreative: true, CreativeData: []byte("{broken")},
	}
	repo := &mockDiscoveryRepo{
		ListByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]domain.Discovery, error) {
			return rows, nil
		},
	}
	svc := newTestService(nil, nil, repo)

	views, err := svc.ListDiscoveries(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	discoveryID := uuid.New()
	var setTo *bool
	repo := &mockDiscoveryRepo{
		GetByIDFunc: func(ctx context.Context, uid, id uuid.UUID) (*domain.Discovery, error) {
			return &domain.Discovery{ID: id, UserID: uid, IsFavorite: true}, nil
		},
		SetFavoriteFunc: func(ctx context.Context, uid, id uuid.UUID, favorite bool) error {
			setTo = &favorite
			return nil
		},
	}
	svc := newTestService(nil, nil, repo)

	nowFavorite, err := svc.ToggleFavorite(context.Background(), userID, discoveryID)
	require.NoError(t, err)
	assert.False(t, nowFavorite)
	require.NotNil(t, setTo)
	assert.False(t, *setTo)
}

func TestToggleFavorite_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, &mockDiscoveryRepo{})

	_, err := svc.ToggleFavorite(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
