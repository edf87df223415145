package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig `mapstructure:"game"`
	Demo DemoConfig `mapstructure:"demo"`
	Log  LogConfig  `mapstructure:"log"`
}

// GameConfig holds board and seating settings
type GameConfig struct {
	BoardSize  int `mapstructure:"board_size"`
	NumPlayers int `mapstructure:"num_players"`
}

// DemoConfig holds self-play demo settings
type DemoConfig struct {
	// MaxTurns caps the simulation; 0 means play until the game ends.
	MaxTurns int `mapstructure:"max_turns"`
	// Seed fixes the RNG for reproducible games; 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
	// PrintBoard controls whether the board is rendered after each move.
	PrintBoard bool `mapstructure:"print_board"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board_size", 20)
	v.SetDefault("game.num_players", 4)

	v.SetDefault("demo.max_turns", 0)
	v.SetDefault("demo.seed", 0)
	v.SetDefault("demo.print_board", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BLOKUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config files are fine, defaults apply; other read
		// failures are real errors when a default location was used.
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.BoardSize < 1 {
		return fmt.Errorf("game.board_size must be positive")
	}
	if c.Game.NumPlayers < 2 || c.Game.NumPlayers > 4 {
		return fmt.Errorf("game.num_players must be between 2 and 4")
	}
	if c.Demo.MaxTurns < 0 {
		return fmt.Errorf("demo.max_turns must be non-negative")
	}
	return nil
}
