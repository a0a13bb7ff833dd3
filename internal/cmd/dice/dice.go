// Package dice parses dice command flags and starts the roll service.
package dice

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	diceservice "github.com/louisbranch/dicebot/internal/services/dice/api/grpc/dice"
	server "github.com/louisbranch/dicebot/internal/services/dice/app"
)

// Config holds dice command configuration.
type Config struct {
	Port        int    `env:"DICEBOT_DICE_PORT" envDefault:"8090"`
	Addr        string `env:"DICEBOT_DICE_ADDR_LISTEN"`
	DBPath      string `env:"DICEBOT_DICE_DB_PATH" envDefault:"data/dice.db"`
	MaxDice     int    `env:"DICEBOT_DICE_MAX_DICE" envDefault:"100"`
	MaxSides    int    `env:"DICEBOT_DICE_MAX_SIDES" envDefault:"1000"`
	MaxTimes    int    `env:"DICEBOT_DICE_MAX_TIMES" envDefault:"10"`
	MaxModifier int    `env:"DICEBOT_DICE_MAX_MODIFIER" envDefault:"10000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dice server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The dice server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the roll history database")
	fs.IntVar(&cfg.MaxDice, "max-dice", cfg.MaxDice, "Maximum dice rolled per repetition")
	fs.IntVar(&cfg.MaxSides, "max-sides", cfg.MaxSides, "Maximum sides per die")
	fs.IntVar(&cfg.MaxTimes, "max-times", cfg.MaxTimes, "Maximum repetitions per roll")
	fs.IntVar(&cfg.MaxModifier, "max-modifier", cfg.MaxModifier, "Maximum magnitude of a group modifier")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dice roll service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDice, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:   cfg.Addr,
			Port:   cfg.Port,
			DBPath: cfg.DBPath,
			Limits: diceservice.Limits{
				MaxDice:     cfg.MaxDice,
				MaxSides:    cfg.MaxSides,
				MaxTimes:    cfg.MaxTimes,
				MaxModifier: cfg.MaxModifier,
			},
		})
	})
}
