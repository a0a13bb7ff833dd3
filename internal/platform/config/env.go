// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix shared by every setting read from the environment.
const EnvPrefix = "DICEBOT_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RequireString reports a missing required setting by its environment name.
func RequireString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s%s is required", EnvPrefix, name)
	}
	return nil
}
