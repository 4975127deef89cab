// Package config provides Viper-based configuration loading.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/logging"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// EnvPrefix prefixes every environment override, e.g. ROOMCRAWL_LOGGING_FILE.
const EnvPrefix = "ROOMCRAWL"

// Config is the top-level application configuration.
type Config struct {
	Game      game.Config      `mapstructure:"game"`
	Logging   logging.Config   `mapstructure:"logging"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	if c.Game.FrameInterval <= 0 {
		errs = append(errs, fmt.Sprintf("game.frame_interval must be positive, got %s", c.Game.FrameInterval))
	}
	if err := c.Game.Dungeon.Validate(); err != nil {
		errs = append(errs, "game.dungeon: "+err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l logging.Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path uses defaults
// and the environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("nil viper instance")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	g := game.DefaultConfig()
	v.SetDefault("game.seed", g.Seed)
	v.SetDefault("game.frame_interval", g.FrameInterval.String())
	v.SetDefault("game.dungeon.min_map_size", g.Dungeon.MinMapSize)
	v.SetDefault("game.dungeon.max_map_size", g.Dungeon.MaxMapSize)
	v.SetDefault("game.dungeon.min_rooms", g.Dungeon.MinRooms)
	v.SetDefault("game.dungeon.max_rooms", g.Dungeon.MaxRooms)
	v.SetDefault("game.dungeon.min_room_size", g.Dungeon.MinRoomSize)
	v.SetDefault("game.dungeon.max_room_size", g.Dungeon.MaxRoomSize)
	v.SetDefault("game.dungeon.max_attempts", g.Dungeon.MaxAttempts)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
}
