package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/dicebot/internal/services/bot/commands"
)

type fakeSession struct {
	mu         sync.Mutex
	responses  []*discordgo.InteractionResponse
	edits      []string
	followups  []*discordgo.WebhookParams
	respondErr error
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, *edit.Content)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

type stubCommand struct {
	name  string
	run   func(context.Context, commands.Invocation) error
	calls int
}

func (s *stubCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: s.name, Description: s.name}
}

func (s *stubCommand) Execute(ctx context.Context, inv commands.Invocation) error {
	s.calls++
	return s.run(ctx, inv)
}

func commandInteraction(name string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Locale: discordgo.EnglishUS,
		Data:   discordgo.ApplicationCommandInteractionData{Name: name},
	}
}

func newTestDispatcher(t *testing.T, session Session, cmds ...commands.Command) *Dispatcher {
	t.Helper()
	registry, err := commands.NewRegistry(cmds...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return NewDispatcher(registry, session)
}

func TestDispatcherRunsCommand(t *testing.T) {
	session := &fakeSession{}
	dispatcher := newTestDispatcher(t, session, commands.Ping{})

	dispatcher.Handle(context.Background(), commandInteraction("ping"))

	if len(session.responses) != 1 {
		t.Fatalf("responses = %d", len(session.responses))
	}
	resp := session.responses[0]
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource || resp.Data.Content != "Pong!" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDispatcherIgnoresNonCommands(t *testing.T) {
	session := &fakeSession{}
	cmd := &stubCommand{name: "ping", run: func(context.Context, commands.Invocation) error { return nil }}
	dispatcher := newTestDispatcher(t, session, cmd)

	dispatcher.Handle(context.Background(), &discordgo.Interaction{Type: discordgo.InteractionMessageComponent})
	dispatcher.Handle(context.Background(), nil)
	dispatcher.Handle(context.Background(), commandInteraction("unknown"))

	if cmd.calls != 0 || len(session.responses) != 0 {
		t.Fatalf("expected nothing to run, calls=%d responses=%d", cmd.calls, len(session.responses))
	}
}

func TestDispatcherReportsFailureAsReply(t *testing.T) {
	session := &fakeSession{}
	cmd := &stubCommand{name: "broken", run: func(context.Context, commands.Invocation) error {
		return errors.New("boom")
	}}
	dispatcher := newTestDispatcher(t, session, cmd)

	dispatcher.Handle(context.Background(), commandInteraction("broken"))

	if len(session.followups) != 0 {
		t.Fatalf("unexpected follow-ups %v", session.followups)
	}
	if len(session.responses) != 1 {
		t.Fatalf("responses = %d", len(session.responses))
	}
	data := session.responses[0].Data
	if data.Content != "There was an error while executing this command!" || data.Flags != discordgo.MessageFlagsEphemeral {
		t.Fatalf("unexpected failure reply %+v", data)
	}
}

func TestDispatcherReportsFailureAsFollowupAfterDefer(t *testing.T) {
	session := &fakeSession{}
	cmd := &stubCommand{name: "slow", run: func(ctx context.Context, inv commands.Invocation) error {
		if err := inv.Respond.Defer(ctx); err != nil {
			return err
		}
		return errors.New("boom")
	}}
	dispatcher := newTestDispatcher(t, session, cmd)

	dispatcher.Handle(context.Background(), commandInteraction("slow"))

	if len(session.followups) != 1 {
		t.Fatalf("follow-ups = %d", len(session.followups))
	}
	if got := session.followups[0]; got.Content != "There was an error while executing this command!" || got.Flags != discordgo.MessageFlagsEphemeral {
		t.Fatalf("unexpected follow-up %+v", got)
	}
}

func TestResponderTracksAcknowledgement(t *testing.T) {
	session := &fakeSession{}
	responder := newResponder(session, commandInteraction("roll"))
	if responder.acknowledged() {
		t.Fatal("fresh responder must not be acknowledged")
	}
	if err := responder.Defer(context.Background()); err != nil {
		t.Fatalf("defer: %v", err)
	}
	if err := responder.EditReply(context.Background(), "(4 of 6) = 4"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !responder.acknowledged() {
		t.Fatal("expected acknowledgement")
	}
	if len(session.edits) != 1 || session.edits[0] != "(4 of 6) = 4" {
		t.Fatalf("edits = %v", session.edits)
	}
	if session.responses[0].Type != discordgo.InteractionResponseDeferredChannelMessageWithSource {
		t.Fatalf("unexpected defer type %v", session.responses[0].Type)
	}
}

func TestResponderFailedReplyStaysUnacknowledged(t *testing.T) {
	session := &fakeSession{respondErr: errors.New("unknown interaction")}
	responder := newResponder(session, commandInteraction("ping"))
	if err := responder.Reply(context.Background(), "Pong!"); err == nil {
		t.Fatal("expected reply error")
	}
	if responder.acknowledged() {
		t.Fatal("failed reply must not acknowledge")
	}
}

type fakeGateway struct {
	fakeSession
	handlers []any
	opened   chan struct{}
	closed   bool
	openErr  error
}

func (g *fakeGateway) AddHandler(handler any) func() {
	g.handlers = append(g.handlers, handler)
	return func() {}
}

func (g *fakeGateway) Open() error {
	if g.openErr != nil {
		return g.openErr
	}
	close(g.opened)
	return nil
}

func (g *fakeGateway) Close() error {
	g.closed = true
	return nil
}

func TestServeDispatchesUntilCancelled(t *testing.T) {
	gw := &fakeGateway{opened: make(chan struct{})}
	registry, err := commands.NewRegistry(commands.Ping{})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, gw, registry) }()

	select {
	case <-gw.opened:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not opened")
	}

	var handled bool
	for _, handler := range gw.handlers {
		if fn, ok := handler.(func(*discordgo.Session, *discordgo.InteractionCreate)); ok {
			fn(nil, &discordgo.InteractionCreate{Interaction: commandInteraction("ping")})
			handled = true
		}
	}
	if !handled {
		t.Fatal("interaction handler was not registered")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("serve: %v", err)
	}
	if !gw.closed {
		t.Fatal("expected session to be closed")
	}
	if len(gw.responses) != 1 || gw.responses[0].Data.Content != "Pong!" {
		t.Fatalf("unexpected responses %+v", gw.responses)
	}
}

func TestServeReturnsOpenError(t *testing.T) {
	gw := &fakeGateway{opened: make(chan struct{}), openErr: errors.New("bad token")}
	registry, _ := commands.NewRegistry(commands.Ping{})
	if err := serve(context.Background(), gw, registry); err == nil {
		t.Fatal("expected open error")
	}
}

func TestRunRequiresToken(t *testing.T) {
	if err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected missing token error")
	}
}
