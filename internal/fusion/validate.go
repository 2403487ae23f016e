package fusion

import (
	"encoding/json"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// ValidateCandidate normalizes one raw AI candidate into a well-formed
// Candidate. Every field has an explicit fallback, so the function is total:
// even a completely empty RawCandidate yields a usable result built from the
// two input words.
func ValidateCandidate(raw RawCandidate, wordA, wordB domain.WordRef) Candidate {
	c := Candidate{
		Result:         raw.Result,
		Meaning:        raw.Meaning,
		Concept:        raw.Concept,
		Association:    raw.Association,
		SuggestedWords: decodeSuggestedWords(raw.SuggestedWords),
		Example:        raw.Example,
		Icon:           SanitizeIcon(raw.Icon),
		Type:           domain.NormalizeFusionType(raw.Type),
	}

	if c.Result == "" {
		c.Result = wordA.Word + " " + wordB.Word
	}
	if c.Meaning == "" {
		c.Meaning = wordA.Meaning + "与" + wordB.Meaning + "的融合"
	}
	if c.Concept == "" {
		c.Concept = wordA.Meaning + "与" + wordB.Meaning + "相遇，产生新的意象"
	}
	if c.Association == "" {
		c.Association = "创意融合"
	}
	if c.Example == "" {
		c.Example = "This is a fusion of " + wordA.Word + " and " + wordB.Word + "."
	}

	if raw.Etymology != "" {
		e := raw.Etymology
		c.Etymology = &e
	}
	if raw.MemoryTip != "" {
		t := raw.MemoryTip
		c.MemoryTip = &t
	}

	return c
}

// decodeSuggestedWords accepts only a JSON array of strings, truncated to
// the cap. Duplicates survive truncation untouched. Anything else (missing,
// object, scalar, malformed) becomes an empty list.
func decodeSuggestedWords(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var words []string
	if err := json.Unmarshal(raw, &words); err != nil {
		return []string{}
	}
	if words == nil {
		return []string{}
	}
	if len(words) > maxSuggestedWords {
		words = words[:maxSuggestedWords]
	}
	return words
}
