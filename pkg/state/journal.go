package state

import (
	"context"

	"github.com/google/uuid"
)

// JourneyRecord is the archived outcome of a finished journey.
type JourneyRecord struct {
	Player   string `json:"player"`
	Role     string `json:"role"`
	Ending   string `json:"ending"`
	Turns    int    `json:"turns"`
	Distance int    `json:"distance"`
}

// Journal archives the key events of a journey as they happen
type Journal interface {
	// Record appends a key event for a session
	Record(ctx context.Context, sessionID uuid.UUID, entry string) error

	// Finish stores the final record for a session
	Finish(ctx context.Context, sessionID uuid.UUID, record JourneyRecord) error
}
