// Package register publishes the bot's slash command definitions to Discord.
package register

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	"github.com/louisbranch/dicebot/internal/platform/timeouts"
	"github.com/louisbranch/dicebot/internal/services/bot/commands"
)

// Config holds register command configuration.
type Config struct {
	Token        string `env:"DICEBOT_DISCORD_TOKEN"`
	AppID        string `env:"DICEBOT_DISCORD_APP_ID"`
	GuildID      string `env:"DICEBOT_DISCORD_GUILD_ID"`
	RollMaxTimes int    `env:"DICEBOT_ROLL_MAX_TIMES" envDefault:"10"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.AppID, "app-id", cfg.AppID, "Discord application id")
	fs.StringVar(&cfg.GuildID, "guild-id", cfg.GuildID, "Discord guild id (empty registers globally)")
	fs.IntVar(&cfg.RollMaxTimes, "roll-max-times", cfg.RollMaxTimes, "Maximum repetitions offered by /roll")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.RequireString(cfg.Token, "DISCORD_TOKEN"); err != nil {
		return Config{}, err
	}
	if err := config.RequireString(cfg.AppID, "DISCORD_APP_ID"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Overwriter replaces an application's commands.
type Overwriter interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Run replaces the application's commands with the bot's definitions.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRegister, func(ctx context.Context) error {
		session, err := discordgo.New("Bot " + strings.TrimSpace(cfg.Token))
		if err != nil {
			return fmt.Errorf("create discord session: %w", err)
		}
		return Publish(ctx, session, cfg)
	})
}

// Publish bulk-overwrites the commands for cfg.GuildID, or globally when it
// is empty.
func Publish(ctx context.Context, overwriter Overwriter, cfg Config) error {
	registry := commands.Default(nil, nil, cfg.RollMaxTimes)
	defs := registry.Definitions()

	scope := "globally"
	if cfg.GuildID != "" {
		scope = "for guild " + cfg.GuildID
	}
	log.Printf("started refreshing %d slash commands %s", len(defs), scope)

	ctx, cancel := context.WithTimeout(ctx, timeouts.DiscordRegister)
	defer cancel()
	registered, err := overwriter.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, defs, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("overwrite commands: %w", err)
	}
	log.Printf("successfully reloaded %d slash commands", len(registered))
	return nil
}
