package fusion

import (
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

const fallbackIcon = "✨"

// Generate synthesizes a creative fusion for two words without any external
// dependency. For a fixed pair of word identities and fixed template data
// the output is identical across calls, processes, and machines: every
// choice is indexed by the deterministic pair hash. It is a total function
// and cannot fail.
func Generate(wordA, wordB domain.WordRef) domain.FusionResult {
	catA := wordA.Category
	if !catA.IsValid() {
		catA = domain.CategoryOther
	}
	catB := wordB.Category
	if !catB.IsValid() {
		catB = domain.CategoryOther
	}

	key := domain.PairKey(wordA.ID, wordB.ID)
	seed := PairHash(wordA.ID, wordB.ID)
	tpl := TemplateFor(catA, catB)

	suffix := tpl.ConceptSuffixes[seed%len(tpl.ConceptSuffixes)]
	concept := wordA.Meaning + "与" + wordB.Meaning + "的融合——" + suffix

	pool := tpl.SuggestedWordsPool
	resultWord := pool[seed%len(pool)]

	rest := make([]string, 0, len(pool))
	for _, w := range pool {
		if w != resultWord {
			rest = append(rest, w)
		}
	}
	suggested := append([]string{resultWord}, pickFromPool(rest, seed+1, 4)...)
	if len(suggested) > maxSuggestedWords {
		suggested = suggested[:maxSuggestedWords]
	}

	association := tpl.AssociationVariants[seed%len(tpl.AssociationVariants)]

	from := [2]string{wordA.ID, wordB.ID}
	if from[0] > from[1] {
		from[0], from[1] = from[1], from[0]
	}

	return domain.FusionResult{
		ID:             "creative-" + key,
		From:           from,
		Result:         resultWord,
		Meaning:        concept,
		Type:           domain.FusionTypeCreative,
		Icon:           fallbackIcon,
		Concept:        &concept,
		Association:    &association,
		SuggestedWords: suggested,
		IsCreative:     true,
	}
}

// pickFromPool selects up to count distinct words from pool via a
// deterministic round-robin probe: index (seed + i*31) mod len(pool) for
// i = 0, 1, 2, …, skipping already-chosen words. The probe budget is
// 2*count, so the walk always terminates; if it ends short, whatever was
// found is returned, and an empty pick falls back to the seed slot.
func pickFromPool(pool []string, seed, count int) []string {
	if len(pool) == 0 {
		return []string{}
	}

	seen := make(map[string]bool, count)
	out := make([]string, 0, count)
	for i := 0; i < count*2 && len(out) < count; i++ {
		w := pool[(seed+i*31)%len(pool)]
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return []string{pool[seed%len(pool)]}
	}
	return out
}
