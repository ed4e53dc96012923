package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Display DisplayConfig `mapstructure:"display"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Arena ArenaConfig `mapstructure:"arena"`
	Setup SetupConfig `mapstructure:"setup"`
}

// ArenaConfig holds arena size and population
type ArenaConfig struct {
	Rows    int `mapstructure:"rows"`
	Cols    int `mapstructure:"cols"`
	Rats    int `mapstructure:"rats"`
	MaxRats int `mapstructure:"max_rats"`
}

// SetupConfig holds how a new arena is populated
type SetupConfig struct {
	MaxPlacementAttempts int    `mapstructure:"max_placement_attempts"`
	Seed                 uint64 `mapstructure:"seed"`
	Scenario             string `mapstructure:"scenario"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DisplayConfig holds console output settings
type DisplayConfig struct {
	ClearScreen bool `mapstructure:"clear_screen"`
	Color       bool `mapstructure:"color"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper

	// envOverlay holds the settings of the merged environment file
	envOverlay map[string]any
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Arena defaults
	v.SetDefault("game.arena.rows", 10)
	v.SetDefault("game.arena.cols", 12)
	v.SetDefault("game.arena.rats", 25)
	v.SetDefault("game.arena.max_rats", 100)

	// Setup defaults
	v.SetDefault("game.setup.max_placement_attempts", 10000)
	v.SetDefault("game.setup.seed", 0)
	v.SetDefault("game.setup.scenario", "")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// Display defaults
	v.SetDefault("display.clear_screen", true)
	v.SetDefault("display.color", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	envOverlay = nil

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/ratarena")
	}

	v.SetEnvPrefix("RATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file keeps the defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = next

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded
// configuration. A missing file is not an error. The base config file stays
// the one reported by ConfigFilePath and watched by WatchConfig.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	ev := viper.New()
	ev.SetConfigFile(envFile)
	if err := ev.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}

	overlay := ev.AllSettings()
	if err := v.MergeConfigMap(overlay); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	if err := reload(); err != nil {
		return err
	}
	envOverlay = overlay
	return nil
}

// Set overrides a single key at runtime. The override survives reloads.
func Set(key string, value interface{}) error {
	v.Set(key, value)
	return reload()
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded configuration; changes that fail validation are ignored.
func WatchConfig(logger zerolog.Logger, onChange func(*Config)) {
	logger = logger.With().Str("component", "config").Logger()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-reading the base file drops the environment overlay
		if envOverlay != nil {
			if err := v.MergeConfigMap(envOverlay); err != nil {
				logger.Warn().Err(err).Msg("Failed to reapply environment config")
			}
		}
		if err := reload(); err != nil {
			logger.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid config change")
			return
		}
		logger.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("Config reloaded")
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

// reload re-decodes viper's state and swaps it in only when it validates
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = next
	return nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	a := c.Game.Arena
	if a.Rows < 1 || a.Rows > core.MaxRows {
		return fmt.Errorf("game.arena.rows must be between 1 and %d", core.MaxRows)
	}
	if a.Cols < 1 || a.Cols > core.MaxCols {
		return fmt.Errorf("game.arena.cols must be between 1 and %d", core.MaxCols)
	}
	if a.MaxRats < 1 || a.MaxRats > arena.MaxRatsLimit {
		return fmt.Errorf("game.arena.max_rats must be between 1 and %d", arena.MaxRatsLimit)
	}
	if a.Rats < 0 || a.Rats > a.MaxRats {
		return fmt.Errorf("game.arena.rats must be between 0 and game.arena.max_rats")
	}

	if c.Game.Setup.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("game.setup.max_placement_attempts must be positive")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
