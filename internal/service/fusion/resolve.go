package fusion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/fusion"
)

// TextWordInput is a free-text word for chain fusion: a previous result's
// text standing in for a catalog record.
type TextWordInput struct {
	Word     string
	Meaning  string
	Category string
}

// ResolveByIDs fuses two catalog words. Resolution runs exact rule first,
// then the AI path, then the deterministic generator. The only error it can
// return is ErrWordNotFound for a missing catalog id; every AI failure is
// absorbed by the fallback.
func (s *Service) ResolveByIDs(ctx context.Context, wordAID, wordBID string) ([]domain.FusionResult, error) {
	sortedA, sortedB := domain.SortPair(wordAID, wordBID)

	rule, err := s.rules.GetByPair(ctx, sortedA, sortedB)
	switch {
	case err == nil:
		return []domain.FusionResult{ruleToResult(rule)}, nil
	case errors.Is(err, domain.ErrNotFound):
		// No precomputed rule for this pair; generate one.
	default:
		// A broken rule store must not take resolution down with it.
		s.log.WarnContext(ctx, "rule lookup failed, continuing without exact match",
			slog.String("word_a_id", sortedA),
			slog.String("word_b_id", sortedB),
			slog.String("error", err.Error()),
		)
	}

	wordA, err := s.words.GetByID(ctx, sortedA)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWordNotFound, sortedA)
		}
		return nil, fmt.Errorf("get word %s: %w", sortedA, err)
	}
	wordB, err := s.words.GetByID(ctx, sortedB)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWordNotFound, sortedB)
		}
		return nil, fmt.Errorf("get word %s: %w", sortedB, err)
	}

	return s.generate(ctx, wordA.Ref(), wordB.Ref()), nil
}

// ResolveByText fuses two free-text words under synthetic virtual
// identities. Virtual words can never carry a precomputed rule, so the
// exact-match tier is skipped. The call cannot fail: the worst case is a
// single deterministic fallback result.
func (s *Service) ResolveByText(ctx context.Context, inputA, inputB TextWordInput) []domain.FusionResult {
	return s.generate(ctx, virtualRef(inputA), virtualRef(inputB))
}

// virtualRef builds the engine-facing word for a free-text input. An empty
// meaning defaults to the word itself so prompts and fallback concepts stay
// readable.
func virtualRef(in TextWordInput) domain.WordRef {
	word := strings.TrimSpace(in.Word)
	meaning := strings.TrimSpace(in.Meaning)
	if meaning == "" {
		meaning = word
	}
	return domain.WordRef{
		ID:       domain.VirtualWordID(word),
		Word:     word,
		Meaning:  meaning,
		Category: domain.NormalizeCategory(in.Category),
	}
}

// generate runs the AI tier when a provider is configured, then the
// deterministic fallback. It always returns at least one result.
func (s *Service) generate(ctx context.Context, refA, refB domain.WordRef) []domain.FusionResult {
	if s.ai != nil {
		if cached, ok := s.cache.Get(refA.Word, refB.Word); ok {
			return candidatesToResults(cached, refA, refB)
		}

		candidates, err := s.ai.FuseWords(ctx, refA, refB)
		if err == nil && len(candidates) > 0 {
			s.cache.Put(refA.Word, refB.Word, candidates)
			return candidatesToResults(candidates, refA, refB)
		}
		s.log.WarnContext(ctx, "ai fusion failed, using template fallback",
			slog.String("word_a", refA.Word),
			slog.String("word_b", refB.Word),
			slog.String("error", errString(err)),
		)
	}

	return []domain.FusionResult{fusion.Generate(refA, refB)}
}

// candidatesToResults shapes validated AI candidates into final results.
// Ids derive from the sorted pair key and the slot index, so repeated
// resolutions of the same pair stay traceable.
func candidatesToResults(candidates []fusion.Candidate, refA, refB domain.WordRef) []domain.FusionResult {
	key := domain.PairKey(refA.ID, refB.ID)
	from := [2]string{refA.ID, refB.ID}
	if from[0] > from[1] {
		from[0], from[1] = from[1], from[0]
	}

	results := make([]domain.FusionResult, 0, len(candidates))
	for i, c := range candidates {
		id := "ai-" + key
		if i > 0 {
			id = fmt.Sprintf("ai-%s-%d", key, i)
		}
		concept := c.Concept
		association := c.Association
		example := c.Example
		results = append(results, domain.FusionResult{
			ID:             id,
			From:           from,
			Result:         c.Result,
			Meaning:        c.Meaning,
			Type:           c.Type,
			Icon:           c.Icon,
			Concept:        &concept,
			Association:    &association,
			SuggestedWords: c.SuggestedWords,
			Example:        &example,
			Etymology:      c.Etymology,
			MemoryTip:      c.MemoryTip,
			IsCreative:     true,
		})
	}
	return results
}

// ruleToResult shapes a precomputed rule into the canonical result. Rule
// pairs are stored sorted, so From needs no reordering.
func ruleToResult(rule *domain.FusionRule) domain.FusionResult {
	return domain.FusionResult{
		ID:             rule.ID,
		From:           [2]string{rule.WordAID, rule.WordBID},
		Result:         rule.Result,
		Meaning:        rule.Meaning,
		Type:           rule.Type,
		Icon:           rule.Icon,
		Concept:        rule.Concept,
		Association:    rule.Association,
		SuggestedWords: rule.SuggestedWords,
		Example:        rule.Example,
		IsCreative:     false,
	}
}

func errString(err error) string {
	if err == nil {
		return "empty candidate list"
	}
	return err.Error()
}
