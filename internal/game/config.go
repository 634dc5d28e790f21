// Package game provides the main game loop and state management.
package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, parsed from the environment.
type Config struct {
	// Seed for board generation. Zero means a non-reproducible time seed.
	Seed int64 `env:"GRIDQUEST_SEED"`

	// Board dimensions.
	BoardWidth  int `env:"GRIDQUEST_BOARD_WIDTH" envDefault:"80"`
	BoardHeight int `env:"GRIDQUEST_BOARD_HEIGHT" envDefault:"22"`

	// PlayerName skips the character creation flow when set.
	PlayerName string `env:"GRIDQUEST_PLAYER_NAME"`

	// PlayerClass is the class ID used when PlayerName is set.
	PlayerClass string `env:"GRIDQUEST_PLAYER_CLASS" envDefault:"wanderer"`
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
