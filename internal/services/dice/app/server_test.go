package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	dicev1 "github.com/louisbranch/dicebot/api/dice/v1"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	diceservice "github.com/louisbranch/dicebot/internal/services/dice/api/grpc/dice"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServerRollAndFetch(t *testing.T) {
	server, err := New(Config{
		Addr:   "127.0.0.1:0",
		DBPath: filepath.Join(t.TempDir(), "data", "dice.db"),
		Limits: diceservice.DefaultLimits(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("timed out waiting for server to stop")
		}
	})

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	conn, err := platformgrpc.DialWithHealth(dialCtx, server.Addr(), platformgrpc.HealthDial{
		Service: dicev1.ServiceName,
		Timeout: 5 * time.Second,
	}, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	client := dicev1.NewDiceServiceClient(conn)
	rolled, err := client.RollDice(dialCtx, &dicev1.RollDiceRequest{
		Dice:  []*dicev1.DiceGroup{{Count: 2, Sides: 6, Modifier: 1}},
		Times: 2,
	})
	if err != nil {
		t.Fatalf("roll dice: %v", err)
	}
	if rolled.GetRollId() == "" {
		t.Fatal("expected roll id")
	}
	if len(rolled.GetOutcomes()) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(rolled.GetOutcomes()))
	}
	for _, outcome := range rolled.GetOutcomes() {
		group := outcome.GetGroups()[0]
		if len(group.GetResults()) != 2 {
			t.Fatalf("expected 2 results, got %v", group.GetResults())
		}
		if group.GetTotal() != group.GetResults()[0]+group.GetResults()[1]+1 {
			t.Fatalf("group total %d does not include modifier", group.GetTotal())
		}
	}

	record, err := client.GetRoll(dialCtx, &dicev1.GetRollRequest{RollId: rolled.GetRollId()})
	if err != nil {
		t.Fatalf("get roll: %v", err)
	}
	if record.GetSeed() != rolled.GetSeed() || record.GetTimes() != 2 {
		t.Fatalf("unexpected record %+v", record)
	}

	_, err = client.GetRoll(dialCtx, &dicev1.GetRollRequest{RollId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestNewRejectsBadAddress(t *testing.T) {
	if _, err := New(Config{Addr: "256.0.0.1:-1", DBPath: filepath.Join(t.TempDir(), "dice.db")}); err == nil {
		t.Fatal("expected listen error")
	}
}
