package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an app user registered by device id. Registration is anonymous;
// nickname and email are bound later, if ever.
type User struct {
	ID           uuid.UUID
	DeviceID     string
	Nickname     *string
	Email        *string
	CreatedAt    time.Time
	LastActiveAt time.Time
}
