package game

import (
	"time"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `mapstructure:"seed"`

	// FrameInterval is how long the loop waits for input before redrawing.
	FrameInterval time.Duration `mapstructure:"frame_interval"`

	// Dungeon bounds every generation, including regenerations.
	Dungeon world.Params `mapstructure:"dungeon"`
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 16 * time.Millisecond,
		Dungeon:       world.DefaultParams(),
	}
}
