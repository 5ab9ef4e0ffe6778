package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/skyjo/internal/game"
	"github.com/rs/zerolog"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerSettings
	Rules  RulesConfig
	Reaper ReaperConfig
}

// configFile is the on-disk shape; every block is optional.
type configFile struct {
	Server *ServerSettings `hcl:"server,block"`
	Rules  *RulesConfig    `hcl:"rules,block"`
	Reaper *ReaperConfig   `hcl:"reaper,block"`
}

// ServerSettings contains listener and logging settings.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RulesConfig sets the defaults applied to every new room.
type RulesConfig struct {
	WinThreshold int `hcl:"win_threshold,optional"`
	MaxPlayers   int `hcl:"max_players,optional"`
}

// ReaperConfig controls removal of abandoned rooms. Durations use Go syntax
// ("30s", "15m").
type ReaperConfig struct {
	Interval string `hcl:"interval,optional"`
	IdleTTL  string `hcl:"idle_ttl,optional"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  ":8080",
			LogLevel: "info",
		},
		Rules: RulesConfig{
			WinThreshold: game.DefaultWinThreshold,
			MaxPlayers:   game.MaxPlayers,
		},
		Reaper: ReaperConfig{
			Interval: "1m",
			IdleTTL:  "30m",
		},
	}
}

// LoadConfig reads an HCL configuration file. A missing file yields the
// defaults; omitted attributes fall back to their default values.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw configFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if raw.Server != nil {
		config.Server = *raw.Server
	}
	if raw.Rules != nil {
		config.Rules = *raw.Rules
	}
	if raw.Reaper != nil {
		config.Reaper = *raw.Reaper
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = def.Server.LogLevel
	}
	if c.Rules.WinThreshold == 0 {
		c.Rules.WinThreshold = def.Rules.WinThreshold
	}
	if c.Rules.MaxPlayers == 0 {
		c.Rules.MaxPlayers = def.Rules.MaxPlayers
	}
	if c.Reaper.Interval == "" {
		c.Reaper.Interval = def.Reaper.Interval
	}
	if c.Reaper.IdleTTL == "" {
		c.Reaper.IdleTTL = def.Reaper.IdleTTL
	}
}

// Validate checks ranges and duration syntax.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	if _, err := zerolog.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Server.LogLevel, err)
	}

	if c.Rules.WinThreshold < 1 {
		return fmt.Errorf("win threshold must be positive, got %d", c.Rules.WinThreshold)
	}
	if c.Rules.MaxPlayers < game.MinPlayers || c.Rules.MaxPlayers > game.MaxPlayers {
		return fmt.Errorf("max players must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, c.Rules.MaxPlayers)
	}

	interval, err := c.ReaperInterval()
	if err != nil {
		return err
	}
	ttl, err := c.IdleTTL()
	if err != nil {
		return err
	}
	if interval <= 0 {
		return fmt.Errorf("reaper interval must be positive, got %s", interval)
	}
	if ttl < interval {
		return fmt.Errorf("idle ttl %s is shorter than reaper interval %s", ttl, interval)
	}
	return nil
}

// ReaperInterval parses the reaper tick interval.
func (c *Config) ReaperInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Reaper.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid reaper interval %q: %w", c.Reaper.Interval, err)
	}
	return d, nil
}

// IdleTTL parses how long a room may sit untouched before removal.
func (c *Config) IdleTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Reaper.IdleTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid idle ttl %q: %w", c.Reaper.IdleTTL, err)
	}
	return d, nil
}
