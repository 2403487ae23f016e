package fusion

import (
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// Template holds the building blocks for one category pairing of the
// fallback generator: concept phrase suffixes, a pool of candidate result
// words, and association phrases. Templates are static and never mutated
// after process start.
type Template struct {
	ConceptSuffixes     []string
	SuggestedWordsPool  []string
	AssociationVariants []string
}

// CategoryPair is an unordered pair of word categories. Construct it via
// NewCategoryPair so the two sides are always stored sorted.
type CategoryPair struct {
	A, B domain.Category
}

// NewCategoryPair returns the sorted pair for two categories.
func NewCategoryPair(a, b domain.Category) CategoryPair {
	if a > b {
		a, b = b, a
	}
	return CategoryPair{A: a, B: b}
}

// TemplateFor resolves the template for two categories, falling back to the
// default template for pairings without a dedicated entry.
func TemplateFor(a, b domain.Category) Template {
	if tpl, ok := creativeTemplates[NewCategoryPair(a, b)]; ok {
		return tpl
	}
	return defaultCreativeTemplate
}
