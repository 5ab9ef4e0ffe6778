package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/skyjo/internal/game"
)

// Strategy names a bot policy.
type Strategy string

const (
	StrategyRandom Strategy = "random"
	StrategyGreedy Strategy = "greedy"
)

// Bot picks actions for one seat from the public state only.
type Bot interface {
	Strategy() Strategy
	// Setup returns the two distinct grid indices to reveal before play.
	Setup(me game.PlayerView, rng *rand.Rand) [2]int
	// Choose returns the next action while it is me's turn.
	Choose(s game.Snapshot, me game.PlayerView, rng *rand.Rand) game.Action
}

// NewBot returns the bot for strategy.
func NewBot(strategy Strategy) (Bot, error) {
	switch strategy {
	case StrategyRandom:
		return RandomBot{}, nil
	case StrategyGreedy:
		return GreedyBot{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// RandomBot picks uniformly among legal moves.
type RandomBot struct{}

func (RandomBot) Strategy() Strategy { return StrategyRandom }

func (RandomBot) Setup(_ game.PlayerView, rng *rand.Rand) [2]int {
	return twoDistinct(rng)
}

func (RandomBot) Choose(s game.Snapshot, me game.PlayerView, rng *rand.Rand) game.Action {
	open := slots(me, isOpen)
	hidden := slots(me, isHidden)

	switch s.Turn {
	case game.TurnChoosing:
		if s.DiscardTop != nil && rng.IntN(2) == 0 {
			return game.DrawDiscard{Index: pick(open, rng)}
		}
		return game.DrawDeck{}
	default:
		if len(hidden) > 0 && rng.IntN(2) == 0 {
			return game.DiscardDrawn{Reveal: pick(hidden, rng)}
		}
		return game.ReplaceDrawn{Index: pick(open, rng)}
	}
}

// GreedyBot swaps out its highest visible card whenever the card on offer
// is lower, keeps low cards in place of hidden ones and otherwise reveals.
type GreedyBot struct{}

// keepBelow is the highest value worth placing over a face-down card.
const keepBelow = 4

func (GreedyBot) Strategy() Strategy { return StrategyGreedy }

func (GreedyBot) Setup(_ game.PlayerView, rng *rand.Rand) [2]int {
	return twoDistinct(rng)
}

func (GreedyBot) Choose(s game.Snapshot, me game.PlayerView, rng *rand.Rand) game.Action {
	switch s.Turn {
	case game.TurnChoosing:
		if s.DiscardTop != nil && s.DiscardTop.Value != nil {
			if idx, ok := placement(me, *s.DiscardTop.Value, rng); ok {
				return game.DrawDiscard{Index: idx}
			}
		}
		return game.DrawDeck{}
	default:
		if s.Pending != nil && s.Pending.Value != nil {
			if idx, ok := placement(me, *s.Pending.Value, rng); ok {
				return game.ReplaceDrawn{Index: idx}
			}
		}
		if hidden := slots(me, isHidden); len(hidden) > 0 {
			return game.DiscardDrawn{Reveal: pick(hidden, rng)}
		}
		return game.ReplaceDrawn{Index: highest(me)}
	}
}

// placement finds where value improves the grid: over the highest visible
// card above it, or over a hidden card when value is low.
func placement(me game.PlayerView, value int, rng *rand.Rand) (int, bool) {
	if idx := highest(me); idx >= 0 && *me.Grid[idx].Value > value {
		return idx, true
	}
	if value <= keepBelow {
		if hidden := slots(me, isHidden); len(hidden) > 0 {
			return pick(hidden, rng), true
		}
	}
	return -1, false
}

// highest returns the visible, uncleared slot with the largest value, or -1.
func highest(me game.PlayerView) int {
	best := -1
	for i, c := range me.Grid {
		if !c.Visible || c.Cleared || c.Value == nil {
			continue
		}
		if best < 0 || *c.Value > *me.Grid[best].Value {
			best = i
		}
	}
	return best
}

func isOpen(c game.CardView) bool   { return !c.Cleared }
func isHidden(c game.CardView) bool { return !c.Visible && !c.Cleared }

func slots(me game.PlayerView, keep func(game.CardView) bool) []int {
	var out []int
	for i, c := range me.Grid {
		if keep(c) {
			out = append(out, i)
		}
	}
	return out
}

func pick(idx []int, rng *rand.Rand) int {
	if len(idx) == 0 {
		return 0
	}
	return idx[rng.IntN(len(idx))]
}

func twoDistinct(rng *rand.Rand) [2]int {
	a := rng.IntN(game.GridSize)
	b := rng.IntN(game.GridSize - 1)
	if b >= a {
		b++
	}
	return [2]int{a, b}
}
