package domain

import "sort"

// FusionType classifies a fusion result by how the result word relates to
// the input pair.
type FusionType string

const (
	FusionTypeCompound FusionType = "compound"
	FusionTypePhrase   FusionType = "phrase"
	FusionTypeCreative FusionType = "creative"
)

func (t FusionType) String() string { return string(t) }

func (t FusionType) IsValid() bool {
	switch t {
	case FusionTypeCompound, FusionTypePhrase, FusionTypeCreative:
		return true
	}
	return false
}

// NormalizeFusionType coerces arbitrary input into the three-value
// enumeration; anything unrecognized becomes creative.
func NormalizeFusionType(s string) FusionType {
	t := FusionType(s)
	if t.IsValid() {
		return t
	}
	return FusionTypeCreative
}

// FusionResult is the canonical engine-owned result of fusing two words.
// Callers must not mutate returned values: cache hits share references.
type FusionResult struct {
	ID             string
	From           [2]string
	Result         string
	Meaning        string
	Type           FusionType
	Icon           string
	Concept        *string
	Association    *string
	SuggestedWords []string
	Example        *string
	Etymology      *string
	MemoryTip      *string
	IsCreative     bool
}

// FusionRule is a curator-authored precomputed fusion for a specific
// unordered pair of word ids. Word ids are stored sorted.
type FusionRule struct {
	ID             string
	WordAID        string
	WordBID        string
	Result         string
	Meaning        string
	Type           FusionType
	Example        *string
	Icon           string
	Concept        *string
	SuggestedWords []string
	Association    *string
}

// SortPair returns the two ids in lexicographic order.
func SortPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// PairKey joins two identities sorted with "+", the canonical key for
// deriving fusion result ids.
func PairKey(a, b string) string {
	p := []string{a, b}
	sort.Strings(p)
	return p[0] + "+" + p[1]
}
