// Package repository provides score persistence implementations.
package repository

import (
	"context"
	"errors"

	"discord-arcade-bot/internal/model"
)

// Common errors for repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
)

// Delta is one field mutation applied to a user's stats.
type Delta struct {
	Field  model.StatField
	Amount int
}

// ScoreRepository is the durable store of per-user cumulative statistics.
// Reading a never-seen user creates a zero-valued record as a side effect,
// so GetOrCreate is idempotent for untouched users. Implementations order
// TopN by points descending with user ID as a stable tiebreak.
type ScoreRepository interface {
	// GetOrCreate returns the stats for userID, inserting a zero-valued
	// record if none exists.
	GetOrCreate(ctx context.Context, userID string) (*model.UserStats, error)

	// ApplyDeltas applies the given field deltas to userID's stats in one
	// load-mutate-save cycle and returns the updated record. The points
	// field clamps at zero.
	ApplyDeltas(ctx context.Context, userID string, deltas ...Delta) (*model.UserStats, error)

	// TopN returns the n users with the highest points.
	TopN(ctx context.Context, n int) ([]model.RankedUser, error)
}
