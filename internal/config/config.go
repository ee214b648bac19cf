package config

import (
	"encoding/json"
	"os"
)

// GameConfig holds the static settings for a game of scoundrel. All fields
// are optional in the file; command-line flags override them.
type GameConfig struct {
	// Seed for the dungeon shuffle. Zero means seed from the clock.
	Seed int64 `json:"seed"`

	// Invincible disables losing: the player never dies ("god mode").
	Invincible bool `json:"invincible"`

	// HalfMonsters excludes all spades from the dungeon, leaving clubs as
	// the only monster suit.
	HalfMonsters bool `json:"half_monsters"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `json:"loglevel"`
}

// Default returns the settings used when no config file is present.
func Default() *GameConfig {
	return &GameConfig{LogLevel: "info"}
}

// Load reads and parses the game configuration from a JSON file.
func Load(path string) (*GameConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
