package fusion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// RecordDiscovery stores that a user produced a fusion for a word pair.
// Pairs are unique per user: recording an already-discovered pair returns
// the existing row untouched. Rule-backed results are stored by reference;
// creative ones carry a full snapshot of the generated content.
func (s *Service) RecordDiscovery(ctx context.Context, userID uuid.UUID, wordAID, wordBID string, result domain.FusionResult) (*domain.Discovery, error) {
	sortedA, sortedB := domain.SortPair(wordAID, wordBID)

	existing, err := s.discoveries.GetByPair(ctx, userID, sortedA, sortedB)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing discovery: %w", err)
	}

	d := &domain.Discovery{
		UserID:     userID,
		WordAID:    sortedA,
		WordBID:    sortedB,
		IsCreative: result.IsCreative,
	}
	if result.IsCreative {
		data, err := encodeSnapshot(result)
		if err != nil {
			return nil, fmt.Errorf("encode creative snapshot: %w", err)
		}
		d.CreativeData = data
	} else {
		ruleID := result.ID
		d.FusionRuleID = &ruleID
	}

	created, err := s.discoveries.Create(ctx, d)
	if err != nil {
		// A concurrent record for the same pair may have won the race.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.discoveries.GetByPair(ctx, userID, sortedA, sortedB)
		}
		return nil, fmt.Errorf("create discovery: %w", err)
	}

	s.log.DebugContext(ctx, "discovery recorded",
		slog.String("user_id", userID.String()),
		slog.String("word_a_id", sortedA),
		slog.String("word_b_id", sortedB),
		slog.Bool("is_creative", result.IsCreative),
	)

	return created, nil
}

// ListDiscoveries returns a user's discovery log, newest first, with fusion
// content resolved. Rows whose content cannot be reconstructed (a deleted
// rule, a corrupt snapshot) are logged and dropped rather than failing the
// whole listing.
func (s *Service) ListDiscoveries(ctx context.Context, userID uuid.UUID) ([]DiscoveryView, error) {
	discoveries, err := s.discoveries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list discoveries: %w", err)
	}
	return s.toViews(ctx, discoveries), nil
}

// ListFavorites returns the favorited subset of a user's discoveries,
// newest first.
func (s *Service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]DiscoveryView, error) {
	discoveries, err := s.discoveries.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return s.toViews(ctx, discoveries), nil
}

// ToggleFavorite flips the favorite flag on one discovery and reports the
// new state. Returns domain.ErrNotFound if the discovery does not exist or
// belongs to another user.
func (s *Service) ToggleFavorite(ctx context.Context, userID, discoveryID uuid.UUID) (bool, error) {
	d, err := s.discoveries.GetByID(ctx, userID, discoveryID)
	if err != nil {
		return false, fmt.Errorf("get discovery: %w", err)
	}

	next := !d.IsFavorite
	if err := s.discoveries.SetFavorite(ctx, userID, discoveryID, next); err != nil {
		return false, fmt.Errorf("set favorite: %w", err)
	}
	return next, nil
}

func (s *Service) toViews(ctx context.Context, discoveries []domain.Discovery) []DiscoveryView {
	views := make([]DiscoveryView, 0, len(discoveries))
	for _, d := range discoveries {
		result, err := s.resolveContent(ctx, d)
		if err != nil {
			s.log.WarnContext(ctx, "skipping unreadable discovery",
				slog.String("discovery_id", d.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		views = append(views, DiscoveryView{
			DiscoveryID:  d.ID,
			Fusion:       result,
			IsFavorite:   d.IsFavorite,
			DiscoveredAt: d.CreatedAt,
		})
	}
	return views
}

func (s *Service) resolveContent(ctx context.Context, d domain.Discovery) (domain.FusionResult, error) {
	if d.FusionRuleID != nil {
		rule, err := s.rules.GetByID(ctx, *d.FusionRuleID)
		if err != nil {
			return domain.FusionResult{}, fmt.Errorf("get rule %s: %w", *d.FusionRuleID, err)
		}
		return ruleToResult(rule), nil
	}

	result, err := decodeSnapshot(d.CreativeData)
	if err != nil {
		return domain.FusionResult{}, fmt.Errorf("decode creative snapshot: %w", err)
	}
	return result, nil
}
