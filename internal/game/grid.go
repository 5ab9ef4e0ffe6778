package game

import (
	"fmt"

	"github.com/lox/skyjo/internal/deck"
)

// Grid geometry. Index i sits at row i/GridCols, column i%GridCols.
const (
	GridRows = 3
	GridCols = 4
	GridSize = GridRows * GridCols
)

// ValidIndex reports whether i addresses a grid slot.
func ValidIndex(i int) bool {
	return i >= 0 && i < GridSize
}

// Grid is a player's 12-card tableau. Slots hold IDs into the round's deck
// arena; a cleared card stays in its slot worth 0.
type Grid struct {
	slots [GridSize]deck.CardID
	deck  *deck.Deck
}

// dealGrid draws 12 cards face down from d.
func dealGrid(d *deck.Deck) (Grid, error) {
	g := Grid{deck: d}
	for i := range g.slots {
		id, err := d.Draw()
		if err != nil {
			return Grid{}, fmt.Errorf("deal slot %d: %w", i, err)
		}
		g.slots[i] = id
	}
	return g, nil
}

func (g *Grid) card(i int) *deck.Card {
	return g.deck.Card(g.slots[i])
}

// Card returns a copy of the card at index i.
func (g *Grid) Card(i int) deck.Card {
	return *g.card(i)
}

// Reveal turns a hidden, non-cleared card face up. It reports whether
// anything changed.
func (g *Grid) Reveal(i int) bool {
	c := g.card(i)
	if c.Visible || c.Cleared {
		return false
	}
	c.Visible = true
	return true
}

// Replace puts id face up at index i and returns the displaced card, which
// is turned face up as well.
func (g *Grid) Replace(i int, id deck.CardID) deck.CardID {
	old := g.slots[i]
	g.deck.Card(old).Visible = true
	g.deck.Card(id).Visible = true
	g.slots[i] = id
	return old
}

// FullyRevealed reports whether every non-cleared card is visible.
func (g *Grid) FullyRevealed() bool {
	for i := range g.slots {
		c := g.card(i)
		if !c.Cleared && !c.Visible {
			return false
		}
	}
	return true
}

// HasHidden reports whether at least one card can still be revealed.
func (g *Grid) HasHidden() bool {
	return !g.FullyRevealed()
}

// VisibleSum adds up the visible, non-cleared cards.
func (g *Grid) VisibleSum() int {
	sum := 0
	for i := range g.slots {
		if c := g.card(i); c.Visible && !c.Cleared {
			sum += c.Value
		}
	}
	return sum
}

// RawScore adds up every non-cleared card, hidden or not.
func (g *Grid) RawScore() int {
	sum := 0
	for i := range g.slots {
		if c := g.card(i); !c.Cleared {
			sum += c.Value
		}
	}
	return sum
}

// RevealAll turns every non-cleared card face up.
func (g *Grid) RevealAll() {
	for i := range g.slots {
		g.Reveal(i)
	}
}

// Len is the number of occupied slots, cleared ones included.
func (g *Grid) Len() int {
	if g.deck == nil {
		return 0
	}
	return GridSize
}

// String renders the grid as three rows, mainly for logs and test failures.
func (g *Grid) String() string {
	if g.deck == nil {
		return "<empty grid>"
	}
	out := ""
	for row := range GridRows {
		for col := range GridCols {
			if col > 0 {
				out += " "
			}
			out += g.card(row*GridCols + col).String()
		}
		if row < GridRows-1 {
			out += "\n"
		}
	}
	return out
}
