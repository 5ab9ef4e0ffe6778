package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/skyjo/cmd/skyjo/shared"
	"github.com/lox/skyjo/internal/fileutil"
	"github.com/lox/skyjo/internal/randutil"
	"github.com/lox/skyjo/internal/simulator"
	"github.com/rs/zerolog"
)

// SimulateCmd plays bot games directly against the rules engine.
type SimulateCmd struct {
	Games       int      `kong:"default='1000',help='Number of games to play'"`
	Players     int      `kong:"default='4',help='Players per game'"`
	Strategies  []string `kong:"default='greedy,random',help='Bot strategies, assigned to seats in turn'"`
	Seed        *int64   `kong:"help='Deterministic seed for the whole run (optional)'"`
	Concurrency int      `kong:"help='Games played in parallel (default: GOMAXPROCS)'"`
	Threshold   int      `kong:"default='100',help='Total that ends the game'"`
	SingleRound bool     `kong:"name='single-round',help='Stop every game after one round'"`
	Output      string   `kong:"short='o',help='Write the report as JSON to this file'"`
	Show        bool     `kong:"help='Render the final table of the first game'"`
	Debug       bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	level := zerolog.InfoLevel
	if c.Debug {
		level = zerolog.DebugLevel
	}
	logger := shared.SetupLogger(level)

	strategies := make([]simulator.Strategy, len(c.Strategies))
	for i, s := range c.Strategies {
		strategies[i] = simulator.Strategy(strings.TrimSpace(s))
	}

	seed, _ := randutil.Resolve(c.Seed)
	sim, err := simulator.New(simulator.Config{
		Games:        c.Games,
		Players:      c.Players,
		Strategies:   strategies,
		Seed:         seed,
		Concurrency:  c.Concurrency,
		WinThreshold: c.Threshold,
		SingleRound:  c.SingleRound,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)
	logger.Info().
		Int64("seed", seed).
		Int("games", c.Games).
		Int("players", c.Players).
		Strs("strategies", c.Strategies).
		Msg("Starting simulation")

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	if c.Show {
		fmt.Fprintln(os.Stdout, simulator.RenderSnapshot(report.Sample))
	}
	printReport(report)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, report, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info().Str("file", c.Output).Msg("Report written")
	}
	return nil
}

func printReport(r *simulator.Report) {
	fmt.Printf("\nSeed %d: %d games, %d players\n", r.Seed, r.Games, r.Players)
	fmt.Printf("  rounds/game     %.2f\n", r.MeanRounds)
	fmt.Printf("  round score     mean %.2f, min %d, max %d\n", r.MeanRoundScore, r.MinRoundScore, r.MaxRoundScore)
	fmt.Printf("  initiator       won %.1f%%, doubled %.1f%%\n", r.InitiatorWinRate*100, r.PenaltyRate*100)
	fmt.Printf("  column clears   %d\n", r.ColumnClears)
	if r.DeckExhaustions > 0 {
		fmt.Printf("  deck exhausted  %d\n", r.DeckExhaustions)
	}
	for _, s := range r.StrategyWins() {
		fmt.Printf("  %-8s wins    %d\n", s, r.Wins[s])
	}
}
