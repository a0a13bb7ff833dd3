// Package storage defines persistence contracts for the dice service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/dicebot/internal/core/dice"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RollRecord is a persisted roll. Seed, Groups and Times are enough to
// reproduce Results with dice.Roll.
type RollRecord struct {
	ID        string
	Seed      int64
	Groups    []dice.Group
	Times     int
	Results   []dice.Result
	CreatedAt time.Time
}

// RollStore persists rolls served by the dice service.
type RollStore interface {
	PutRoll(ctx context.Context, record RollRecord) error
	GetRoll(ctx context.Context, rollID string) (RollRecord, error)
}
