package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "dice.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestPutGetRoll(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	groups := []dice.Group{{Count: 2, Sides: 6, Modifier: 1}, {Count: 1, Sides: 4}}
	results, err := dice.Roll(dice.Request{Groups: groups, Times: 2, Seed: 99})
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	record := storage.RollRecord{
		ID:        "roll-1",
		Seed:      99,
		Groups:    groups,
		Times:     2,
		Results:   results,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	if err := store.PutRoll(ctx, record); err != nil {
		t.Fatalf("put roll: %v", err)
	}

	got, err := store.GetRoll(ctx, "roll-1")
	if err != nil {
		t.Fatalf("get roll: %v", err)
	}
	if !reflect.DeepEqual(got, record) {
		t.Fatalf("got %+v, want %+v", got, record)
	}
}

func TestPutRollRejectsDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	record := storage.RollRecord{
		ID:        "roll-1",
		Groups:    []dice.Group{{Count: 1, Sides: 20}},
		Times:     1,
		Results:   []dice.Result{{Groups: []dice.GroupResult{{Sides: 20, Rolls: []int{4}, Total: 4}}, Total: 4}},
		CreatedAt: time.Now(),
	}
	if err := store.PutRoll(ctx, record); err != nil {
		t.Fatalf("put roll: %v", err)
	}
	if err := store.PutRoll(ctx, record); err == nil {
		t.Fatal("expected duplicate roll id to fail")
	}
}

func TestPutRollValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		record storage.RollRecord
	}{
		{name: "missing id", record: storage.RollRecord{Groups: []dice.Group{{Count: 1, Sides: 6}}, Times: 1}},
		{name: "missing groups", record: storage.RollRecord{ID: "r", Times: 1}},
		{name: "zero times", record: storage.RollRecord{ID: "r", Groups: []dice.Group{{Count: 1, Sides: 6}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.PutRoll(ctx, tt.record); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGetRollNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetRoll(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.GetRoll(ctx, "roll-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected empty path to fail")
	}
	var nilStore *Store
	if err := nilStore.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
