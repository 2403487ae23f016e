package fusion

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// DiscoveryView is one entry of a user's discovery log with the fusion
// content reconstructed, either from its rule or from the stored creative
// snapshot.
type DiscoveryView struct {
	DiscoveryID  uuid.UUID
	Fusion       domain.FusionResult
	IsFavorite   bool
	DiscoveredAt time.Time
}

// resultSnapshot is the persisted form of a creative fusion result. Rule
// results live in their own table; creative ones exist nowhere else, so the
// full content is frozen into the discovery row at record time.
type resultSnapshot struct {
	ID             string            `json:"id"`
	From           [2]string         `json:"from"`
	Result         string            `json:"result"`
	Meaning        string            `json:"meaning"`
	Type           domain.FusionType `json:"type"`
	Icon           string            `json:"icon"`
	Concept        *string           `json:"concept,omitempty"`
	Association    *string           `json:"association,omitempty"`
	SuggestedWords []string          `json:"suggestedWords,omitempty"`
	Example        *string           `json:"example,omitempty"`
	Etymology      *string           `json:"etymology,omitempty"`
	MemoryTip      *string           `json:"memoryTip,omitempty"`
}

func encodeSnapshot(r domain.FusionResult) ([]byte, error) {
	return json.Marshal(resultSnapshot{
		ID:             r.ID,
		From:           r.From,
		Result:         r.Result,
		Meaning:        r.Meaning,
		Type:           r.Type,
		Icon:           r.Icon,
		Concept:        r.Concept,
		Association:    r.Association,
		SuggestedWords: r.SuggestedWords,
		Example:        r.Example,
		Etymology:      r.Etymology,
		MemoryTip:      r.MemoryTip,
	})
}

func decodeSnapshot(data []byte) (domain.FusionResult, error) {
	var s resultSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.FusionResult{}, err
	}
	return domain.FusionResult{
		ID:             s.ID,
		From:           s.From,
		Result:         s.Result,
		Meaning:        s.Meaning,
		Type:           s.Type,
		Icon:           s.Icon,
		Concept:        s.Concept,
		Association:    s.Association,
		SuggestedWords: s.SuggestedWords,
		Example:        s.Example,
		Etymology:      s.Etymology,
		MemoryTip:      s.MemoryTip,
		IsCreative:     true,
	}, nil
}
