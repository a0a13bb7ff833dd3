package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	dicev1 "github.com/louisbranch/dicebot/api/dice/v1"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	"github.com/louisbranch/dicebot/internal/platform/timeouts"
	"github.com/louisbranch/dicebot/internal/services/bot/commands"
	"github.com/louisbranch/dicebot/internal/services/bot/integration"
)

// Config holds bot runtime configuration.
type Config struct {
	Token        string
	DiceAddr     string
	EmojifyURL   string
	RollMaxTimes int
}

// gateway is the part of *discordgo.Session the runtime drives.
type gateway interface {
	Session
	AddHandler(handler any) func()
	Open() error
	Close() error
}

// Run dials the dice service, connects to the Discord gateway and serves
// interactions until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return fmt.Errorf("discord token is required")
	}

	conn, err := platformgrpc.DialWithHealth(ctx, cfg.DiceAddr, platformgrpc.HealthDial{
		Service: dicev1.ServiceName,
		Timeout: timeouts.GRPCDial,
		Logf:    log.Printf,
	}, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial dice service: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("close dice connection: %v", err)
		}
	}()

	registry := commands.Default(
		integration.NewDiceClient(dicev1.NewDiceServiceClient(conn)),
		integration.NewEmojifyClient(cfg.EmojifyURL, nil),
		cfg.RollMaxTimes,
	)

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return serve(ctx, session, registry)
}

func serve(ctx context.Context, session gateway, registry *commands.Registry) error {
	dispatcher := NewDispatcher(registry, session)
	removeReady := session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		log.Printf("ready, logged in as %s", ready.User.String())
	})
	defer removeReady()
	removeInteraction := session.AddHandler(func(_ *discordgo.Session, event *discordgo.InteractionCreate) {
		dispatcher.Handle(ctx, event.Interaction)
	})
	defer removeInteraction()

	if err := session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	log.Printf("bot serving commands %s", strings.Join(registry.Names(), ", "))

	<-ctx.Done()
	if err := session.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	return nil
}
