package domain

import (
	"time"

	"github.com/google/uuid"
)

// Discovery records that a user has produced a fusion for a word pair.
// Pairs are stored sorted and are unique per user. Exact-rule discoveries
// reference the rule; creative ones carry a snapshot of the generated
// result instead, since creative output is not persisted anywhere else.
type Discovery struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WordAID      string
	WordBID      string
	FusionRuleID *string
	IsCreative   bool
	CreativeData []byte
	IsFavorite   bool
	CreatedAt    time.Time
}
