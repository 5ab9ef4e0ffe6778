// Package simulator plays complete games between bots to exercise the rules
// engine and measure how the rules play out.
package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/lox/skyjo/internal/deck"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/randutil"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxTurns caps a single game; real games finish far sooner.
const maxTurns = 20000

// Config holds configuration for a simulation run.
type Config struct {
	Games        int
	Players      int
	Strategies   []Strategy // assigned to seats in turn, cycling
	Seed         int64
	Concurrency  int
	WinThreshold int
	SingleRound  bool
	Logger       zerolog.Logger
}

// Simulator runs bot games in parallel.
type Simulator struct {
	config Config
	bots   []Bot
}

// New validates config and builds the seat bots.
func New(config Config) (*Simulator, error) {
	if config.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if config.Players < game.MinPlayers || config.Players > game.MaxPlayers {
		return nil, fmt.Errorf("players must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, config.Players)
	}
	if len(config.Strategies) == 0 {
		config.Strategies = []Strategy{StrategyGreedy}
	}
	if config.Concurrency < 1 {
		config.Concurrency = runtime.GOMAXPROCS(0)
	}

	bots := make([]Bot, len(config.Strategies))
	for i, s := range config.Strategies {
		b, err := NewBot(s)
		if err != nil {
			return nil, err
		}
		bots[i] = b
	}
	return &Simulator{config: config, bots: bots}, nil
}

// seatBot returns the bot playing seat i.
func (s *Simulator) seatBot(i int) Bot {
	return s.bots[i%len(s.bots)]
}

// Run plays every game and aggregates the results. Game i is seeded from
// the run seed and i alone, so results do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	results := make([]GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := range s.config.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.PlayGame(randutil.Derive(s.config.Seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(s.config, results)
	s.config.Logger.Info().
		Int("games", report.Games).
		Int("rounds", report.Rounds).
		Float64("mean_round_score", report.MeanRoundScore).
		Float64("penalty_rate", report.PenaltyRate).
		Msg("Simulation complete")
	return report, nil
}

// PlayGame plays one complete game from seed.
func (s *Simulator) PlayGame(seed int64) (GameResult, error) {
	room := game.NewRoom(fmt.Sprintf("SIM%03d", seed&0x3ff), randutil.New(seed))
	botRng := randutil.New(randutil.Derive(seed, 1))

	seats := make(map[string]Bot, s.config.Players)
	for i := range s.config.Players {
		id := fmt.Sprintf("p%d", i)
		b := s.seatBot(i)
		seats[id] = b
		if err := room.Join(id, fmt.Sprintf("%s-%d", b.Strategy(), i)); err != nil {
			return GameResult{}, err
		}
	}

	res := GameResult{Seed: seed, Strategies: make(map[string]Strategy, len(seats))}
	for id, b := range seats {
		res.Strategies[id] = b.Strategy()
	}

	err := room.Start(game.Options{
		WinThreshold: s.config.WinThreshold,
		SingleRound:  s.config.SingleRound,
	})
	if err != nil {
		return res, err
	}

	for room.Phase() != game.PhaseGameOver {
		switch room.Phase() {
		case game.PhaseSetup:
			if err := s.playSetup(room, seats, botRng); err != nil {
				return res, err
			}
		case game.PhasePlaying:
			if res.Turns >= maxTurns {
				return res, fmt.Errorf("no result after %d turns", maxTurns)
			}
			if err := s.playTurn(room, seats, botRng, &res); err != nil {
				return res, err
			}
		case game.PhaseRoundFinished:
			res.recordRound(room.Snapshot())
			if err := room.NextRound(); err != nil {
				return res, err
			}
		default:
			return res, fmt.Errorf("unexpected phase %s", room.Phase())
		}
	}

	final := room.Snapshot()
	res.recordRound(final)
	res.Winners = final.Winners
	res.Final = final

	s.config.Logger.Debug().
		Int64("seed", seed).
		Int("rounds", final.Round).
		Int("turns", res.Turns).
		Strs("winners", final.Winners).
		Msg("Game finished")
	return res, nil
}

func (s *Simulator) playSetup(room *game.Room, seats map[string]Bot, rng *rand.Rand) error {
	snap := room.Snapshot()
	for _, p := range snap.Players {
		for _, idx := range seats[p.ID].Setup(p, rng) {
			if err := room.Apply(p.ID, game.SetupReveal{Index: idx}); err != nil {
				return fmt.Errorf("setup reveal for %s: %w", p.ID, err)
			}
		}
	}
	return nil
}

// playTurn plays both halves of the active player's turn.
func (s *Simulator) playTurn(room *game.Room, seats map[string]Bot, rng *rand.Rand, res *GameResult) error {
	snap := room.Snapshot()
	id := snap.ActivePlayer
	me, _ := snap.Player(id)
	bot := seats[id]

	first := bot.Choose(snap, me, rng)
	err := room.Apply(id, first)
	if errors.Is(err, deck.ErrEmptyDeck) {
		// The draw pile can run dry in long rounds; take from the discard
		// pile instead.
		res.DeckExhaustions++
		first = game.DrawDiscard{Index: pick(slots(me, isOpen), rng)}
		err = room.Apply(id, first)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", id, first.Kind(), err)
	}

	if room.Turn() == game.TurnPlacing && room.ActivePlayer() == id {
		snap = room.Snapshot()
		me, _ = snap.Player(id)
		second := bot.Choose(snap, me, rng)
		if err := room.Apply(id, second); err != nil {
			return fmt.Errorf("%s %s: %w", id, second.Kind(), err)
		}
	}

	res.Turns++
	res.ColumnClears += len(room.Snapshot().LastClears)
	return nil
}
