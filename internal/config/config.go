package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Console  Console `yaml:"console"`
}

type Console struct {
	NoColor     bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	ExitKeyword string `yaml:"exit-keyword" env:"TICTACTOE_EXIT_KEYWORD" env-default:"exit"`
}

// Load - reads the yaml file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks values cleanenv can not check by itself.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
