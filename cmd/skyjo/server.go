package main

import (
	"fmt"

	"github.com/lox/skyjo/cmd/skyjo/shared"
	"github.com/lox/skyjo/internal/server"
)

// ServerCmd runs the websocket game server.
type ServerCmd struct {
	Config    string `kong:"default='skyjo.hcl',help='HCL config file (optional)',env='SKYJO_CONFIG'"`
	Addr      string `kong:"help='Server address, overrides the config file',env='SKYJO_ADDR'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
	JSONLogs  bool   `kong:"name='json-logs',help='Emit structured JSON logs'"`
	Threshold int    `kong:"help='Default win threshold, overrides the config file'"`
	Seed      *int64 `kong:"help='Deterministic RNG seed for room shuffles (optional)',env='SKYJO_SEED'"`
}

func (c *ServerCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.Threshold != 0 {
		cfg.Rules.WinThreshold = c.Threshold
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := shared.ParseLevel(cfg.Server.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(level)
	if c.JSONLogs {
		logger = shared.SetupStructuredLogger(level)
	}

	interval, err := cfg.ReaperInterval()
	if err != nil {
		return err
	}
	ttl, err := cfg.IdleTTL()
	if err != nil {
		return err
	}

	opts := []server.ManagerOption{server.WithRules(cfg.Rules)}
	if c.Seed != nil {
		logger.Info().Int64("seed", *c.Seed).Msg("Using deterministic seed")
		opts = append(opts, server.WithSeed(*c.Seed))
	}
	manager := server.NewGameManager(logger, opts...)

	s, err := server.NewServer(manager, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("address", cfg.Server.Address).
		Int("win_threshold", cfg.Rules.WinThreshold).
		Int("max_players", cfg.Rules.MaxPlayers).
		Dur("reaper_interval", interval).
		Dur("idle_ttl", ttl).
		Msg("Starting Skyjo server")

	ctx := shared.SetupSignalHandler(logger)
	manager.StartReaper(ctx, interval, ttl)
	return s.Serve(ctx, cfg.Server.Address)
}
