package simulator

import (
	"sort"

	"github.com/lox/skyjo/internal/game"
)

// GameResult is what one simulated game produced.
type GameResult struct {
	Seed            int64
	Rounds          int
	Turns           int
	RoundScores     []int // every player's score in every round
	Penalties       int   // rounds whose initiator was doubled
	Initiated       int   // rounds that had an initiator
	InitiatorWins   int   // rounds the initiator finished strictly lowest
	ColumnClears    int
	DeckExhaustions int
	Winners         []string
	Strategies      map[string]Strategy
	Final           game.Snapshot
}

func (r *GameResult) recordRound(s game.Snapshot) {
	r.Rounds++
	for _, p := range s.Players {
		r.RoundScores = append(r.RoundScores, p.RoundScore)
	}
	if s.Initiator == "" {
		return
	}
	r.Initiated++

	initiator, _ := s.Player(s.Initiator)
	if initiator.Penalized {
		r.Penalties++
	}
	lowest := true
	for _, p := range s.Players {
		if p.ID != s.Initiator && p.RawScore <= initiator.RawScore {
			lowest = false
			break
		}
	}
	if lowest {
		r.InitiatorWins++
	}
}

// Report aggregates a simulation run.
type Report struct {
	Seed             int64            `json:"seed"`
	Games            int              `json:"games"`
	Players          int              `json:"players"`
	Rounds           int              `json:"rounds"`
	Turns            int              `json:"turns"`
	MeanRounds       float64          `json:"mean_rounds_per_game"`
	MeanRoundScore   float64          `json:"mean_round_score"`
	MinRoundScore    int              `json:"min_round_score"`
	MaxRoundScore    int              `json:"max_round_score"`
	PenaltyRate      float64          `json:"penalty_rate"`
	InitiatorWinRate float64          `json:"initiator_win_rate"`
	ColumnClears     int              `json:"column_clears"`
	DeckExhaustions  int              `json:"deck_exhaustions"`
	Wins             map[Strategy]int `json:"wins"`

	// Sample is the final state of the first game.
	Sample game.Snapshot `json:"-"`
}

func newReport(cfg Config, results []GameResult) *Report {
	rep := &Report{
		Seed:    cfg.Seed,
		Games:   len(results),
		Players: cfg.Players,
		Wins:    make(map[Strategy]int),
	}

	var scoreSum, scores, initiated, penalties, initiatorWins int
	first := true
	for _, res := range results {
		rep.Rounds += res.Rounds
		rep.Turns += res.Turns
		rep.ColumnClears += res.ColumnClears
		rep.DeckExhaustions += res.DeckExhaustions
		initiated += res.Initiated
		penalties += res.Penalties
		initiatorWins += res.InitiatorWins

		for _, v := range res.RoundScores {
			scoreSum += v
			scores++
			if first || v < rep.MinRoundScore {
				rep.MinRoundScore = v
			}
			if first || v > rep.MaxRoundScore {
				rep.MaxRoundScore = v
			}
			first = false
		}

		// A tie for the lowest total credits every tied strategy.
		seen := make(map[Strategy]bool)
		for _, id := range res.Winners {
			st := res.Strategies[id]
			if !seen[st] {
				rep.Wins[st]++
				seen[st] = true
			}
		}
	}

	if rep.Games > 0 {
		rep.MeanRounds = float64(rep.Rounds) / float64(rep.Games)
		rep.Sample = results[0].Final
	}
	if scores > 0 {
		rep.MeanRoundScore = float64(scoreSum) / float64(scores)
	}
	if initiated > 0 {
		rep.PenaltyRate = float64(penalties) / float64(initiated)
		rep.InitiatorWinRate = float64(initiatorWins) / float64(initiated)
	}
	return rep
}

// StrategyWins returns strategies ordered by wins, most first.
func (r *Report) StrategyWins() []Strategy {
	out := make([]Strategy, 0, len(r.Wins))
	for s := range r.Wins {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if r.Wins[out[i]] != r.Wins[out[j]] {
			return r.Wins[out[i]] > r.Wins[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
