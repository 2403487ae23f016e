package fusion

import (
	"encoding/json"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

const (
	maxSuggestedWords = 5
	// MaxResults caps the number of candidates accepted from the AI
	// provider in one resolution.
	MaxResults = 3
)

// RawCandidate is one untrusted fusion candidate as decoded from the AI
// provider's JSON. Decoding is field-tolerant: a wrongly typed field decodes
// to its zero value instead of failing the whole candidate, so ValidateCandidate
// can repair it. SuggestedWords stays raw because providers occasionally
// emit a non-array value there.
type RawCandidate struct {
	Result         string
	Meaning        string
	Concept        string
	Association    string
	SuggestedWords json.RawMessage
	Example        string
	Icon           string
	Type           string
	Etymology      string
	MemoryTip      string
}

func (c *RawCandidate) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	c.Result = stringField(m, "result")
	c.Meaning = stringField(m, "meaning")
	c.Concept = stringField(m, "concept")
	c.Association = stringField(m, "association")
	c.SuggestedWords = m["suggestedWords"]
	c.Example = stringField(m, "example")
	c.Icon = stringField(m, "icon")
	c.Type = stringField(m, "type")
	c.Etymology = stringField(m, "etymology")
	c.MemoryTip = stringField(m, "memoryTip")
	return nil
}

func stringField(m map[string]json.RawMessage, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

// Candidate is a validated fusion candidate: the canonical result shape
// minus the identity fields (id, from pair, isCreative), which only the
// orchestrator can assign.
type Candidate struct {
	Result         string
	Meaning        string
	Concept        string
	Association    string
	SuggestedWords []string
	Example        string
	Icon           string
	Type           domain.FusionType
	Etymology      *string
	MemoryTip      *string
}
