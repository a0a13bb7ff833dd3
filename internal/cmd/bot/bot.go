// Package bot parses bot command flags and starts the Discord runtime.
package bot

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	botapp "github.com/louisbranch/dicebot/internal/services/bot/app"
)

// Config holds bot command configuration.
type Config struct {
	Token        string `env:"DICEBOT_DISCORD_TOKEN"`
	DiceAddr     string `env:"DICEBOT_DICE_ADDR" envDefault:"localhost:8090"`
	EmojifyURL   string `env:"DICEBOT_EMOJIFY_URL" envDefault:"http://localhost:3100"`
	RollMaxTimes int    `env:"DICEBOT_ROLL_MAX_TIMES" envDefault:"10"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DiceAddr, "dice-addr", cfg.DiceAddr, "Dice service gRPC address")
	fs.StringVar(&cfg.EmojifyURL, "emojify-url", cfg.EmojifyURL, "Emojify service URL")
	fs.IntVar(&cfg.RollMaxTimes, "roll-max-times", cfg.RollMaxTimes, "Maximum repetitions offered by /roll")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.RequireString(cfg.Token, "DISCORD_TOKEN"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the bot.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(ctx context.Context) error {
		return botapp.Run(ctx, botapp.Config{
			Token:        cfg.Token,
			DiceAddr:     cfg.DiceAddr,
			EmojifyURL:   cfg.EmojifyURL,
			RollMaxTimes: cfg.RollMaxTimes,
		})
	})
}
