package config

import (
	"errors"
	"io/fs"
	"os"

	"cardtable/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the card table
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	War struct {
		MaxRounds int   `yaml:"maxRounds" envconfig:"max_rounds"`
		Seed      int64 `yaml:"seed"`
	} `yaml:"war"`
	Blackjack struct {
		Players int   `yaml:"players"`
		MinBet  int   `yaml:"minBet" envconfig:"min_bet"`
		Seed    int64 `yaml:"seed"`
	} `yaml:"blackjack"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.War.MaxRounds = 100_000
	cfg.Blackjack.Players = 1
	cfg.Blackjack.MinBet = 1
	cfg.Server.Addr = ":5000"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values in the YAML file override the defaults, and CARDTABLE_* environment
// variables override the file. A missing file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CARDTABLE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("cardtable", &cfg); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}
