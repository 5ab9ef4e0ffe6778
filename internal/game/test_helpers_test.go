package game

import (
	"errors"
	rand "math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/skyjo/internal/deck"
	"github.com/lox/skyjo/internal/randutil"
)

// ascending is a grid with no matching columns.
var ascending = [GridSize]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// stacked returns a deck factory that deals discard first, then each grid
// in seat order, then draws in the given order.
func stacked(discard int, grids [][GridSize]int, draws ...int) func(*rand.Rand) *deck.Deck {
	order := []int{discard}
	for _, g := range grids {
		order = append(order, g[:]...)
	}
	order = append(order, draws...)
	slices.Reverse(order)
	return func(*rand.Rand) *deck.Deck {
		return deck.NewFromValues(slices.Clone(order))
	}
}

// newTestRoom seats players p0..pn-1.
func newTestRoom(t *testing.T, n int, opts ...RoomOption) *Room {
	t.Helper()
	r := NewRoom("TEST01", randutil.New(42), opts...)
	for i := range n {
		require.NoError(t, r.Join(seatID(i), "Player"))
	}
	return r
}

func seatID(i int) string {
	return "p" + string(rune('0'+i))
}

func mustApply(t *testing.T, r *Room, id string, a Action) {
	t.Helper()
	require.NoError(t, r.Apply(id, a), "%s %s", id, a.Kind())
}

// revealSetup makes each player reveal the given pair of indices.
func revealSetup(t *testing.T, r *Room, pairs ...[2]int) {
	t.Helper()
	for i, pair := range pairs {
		mustApply(t, r, seatID(i), SetupReveal{Index: pair[0]})
		mustApply(t, r, seatID(i), SetupReveal{Index: pair[1]})
	}
}

// showAllBut turns every card of seat face up except the listed indices.
func showAllBut(r *Room, seat int, hidden ...int) {
	for i := range GridSize {
		r.players[seat].Grid.card(i).Visible = !slices.Contains(hidden, i)
	}
}

// randomMove picks a legal action for the room's current state.
func randomMove(r *Room, rng *rand.Rand) (string, Action) {
	if r.phase == PhaseSetup {
		for _, p := range r.players {
			if p.SetupDone() {
				continue
			}
			for i := range GridSize {
				if !p.Grid.Card(i).Visible {
					return p.ID, SetupReveal{Index: i}
				}
			}
		}
		return "", nil
	}

	p := r.players[r.active]
	var live, hidden []int
	for i := range GridSize {
		c := p.Grid.Card(i)
		if c.Cleared {
			continue
		}
		live = append(live, i)
		if !c.Visible {
			hidden = append(hidden, i)
		}
	}

	switch r.turn {
	case TurnChoosing:
		if rng.IntN(2) == 0 || r.deck.Len() == 0 {
			return p.ID, DrawDiscard{Index: live[rng.IntN(len(live))]}
		}
		return p.ID, DrawDeck{}
	default:
		if len(hidden) > 0 && rng.IntN(2) == 0 {
			return p.ID, DiscardDrawn{Reveal: hidden[rng.IntN(len(hidden))]}
		}
		return p.ID, ReplaceDrawn{Index: live[rng.IntN(len(live))]}
	}
}

// playRound drives random legal moves until the round ends, calling check
// after every applied action.
func playRound(t *testing.T, r *Room, rng *rand.Rand, check func()) {
	t.Helper()
	for range 10000 {
		if r.phase == PhaseRoundFinished || r.phase == PhaseGameOver {
			return
		}
		id, a := randomMove(r, rng)
		require.NotNil(t, a)
		err := r.Apply(id, a)
		if errors.Is(err, deck.ErrEmptyDeck) {
			continue
		}
		require.NoError(t, err)
		if check != nil {
			check()
		}
	}
	t.Fatal("round did not finish")
}

// cardIDs lists every card id held by the round: draw pile, discard pile,
// each grid slot and the pending card.
func cardIDs(r *Room) []deck.CardID {
	draw, discard := r.deck.Piles()
	ids := append(draw, discard...)
	for _, p := range r.players {
		ids = append(ids, p.Grid.slots[:]...)
	}
	if r.pending != deck.NoCard {
		ids = append(ids, r.pending)
	}
	return ids
}

// requirePartition fails unless every card of the deck is in exactly one
// place.
func requirePartition(t *testing.T, r *Room) {
	t.Helper()
	ids := cardIDs(r)
	require.Len(t, ids, r.deck.Total())
	seen := make(map[deck.CardID]bool, len(ids))
	for _, id := range ids {
		require.False(t, seen[id], "card %d is in two places", id)
		seen[id] = true
	}
}
