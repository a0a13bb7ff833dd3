package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
)

// PutRoll persists a roll record. Rolls are immutable; writing an existing
// id fails.
func (s *Store) PutRoll(ctx context.Context, record storage.RollRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("roll id is required")
	}
	if len(record.Groups) == 0 {
		return fmt.Errorf("roll groups are required")
	}
	if record.Times <= 0 {
		return fmt.Errorf("roll times must be positive")
	}

	groupsJSON, err := json.Marshal(record.Groups)
	if err != nil {
		return fmt.Errorf("marshal groups: %w", err)
	}
	resultsJSON, err := json.Marshal(record.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO rolls (id, seed, groups_json, times, results_json, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		record.ID,
		record.Seed,
		string(groupsJSON),
		record.Times,
		string(resultsJSON),
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put roll: %w", err)
	}
	return nil
}

// GetRoll fetches a roll record by ID.
func (s *Store) GetRoll(ctx context.Context, rollID string) (storage.RollRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RollRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RollRecord{}, fmt.Errorf("storage is not configured")
	}
	rollID = strings.TrimSpace(rollID)
	if rollID == "" {
		return storage.RollRecord{}, fmt.Errorf("roll id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, seed, groups_json, times, results_json, created_at
FROM rolls
WHERE id = ?
`, rollID)

	var (
		rec         storage.RollRecord
		groupsJSON  string
		resultsJSON string
		createdAt   int64
	)
	if err := row.Scan(&rec.ID, &rec.Seed, &groupsJSON, &rec.Times, &resultsJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RollRecord{}, storage.ErrNotFound
		}
		return storage.RollRecord{}, fmt.Errorf("get roll: %w", err)
	}

	var groups []dice.Group
	if err := json.Unmarshal([]byte(groupsJSON), &groups); err != nil {
		return storage.RollRecord{}, fmt.Errorf("unmarshal groups: %w", err)
	}
	var results []dice.Result
	if err := json.Unmarshal([]byte(resultsJSON), &results); err != nil {
		return storage.RollRecord{}, fmt.Errorf("unmarshal results: %w", err)
	}
	rec.Groups = groups
	rec.Results = results
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}
