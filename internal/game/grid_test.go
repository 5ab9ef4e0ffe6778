package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/skyjo/internal/deck"
)

func newGrid(t *testing.T, vals [GridSize]int) (Grid, *deck.Deck) {
	t.Helper()
	// The extra 0 is drawn first, then slot 0 onwards.
	order := append([]int{0}, vals[:]...)
	slices.Reverse(order)
	d := deck.NewFromValues(order)
	_, err := d.Draw()
	require.NoError(t, err)
	g, err := dealGrid(d)
	require.NoError(t, err)
	return g, d
}

func TestGridReveal(t *testing.T) {
	g, _ := newGrid(t, ascending)

	assert.True(t, g.Reveal(0))
	assert.False(t, g.Reveal(0), "second reveal is a no-op")

	g.card(1).Cleared = true
	assert.False(t, g.Reveal(1), "cleared cards are never revealed")
	assert.False(t, g.card(1).Visible)
}

func TestGridReplace(t *testing.T) {
	g, d := newGrid(t, ascending)
	d.PushDiscard(d.Card(12).ID)
	id, ok := d.PopDiscard()
	require.True(t, ok)

	old := g.Replace(5, id)
	assert.True(t, d.Card(old).Visible, "displaced card is face up")
	assert.True(t, g.Card(5).Visible)
	assert.Equal(t, d.Card(id).Value, g.Card(5).Value)
}

func TestGridFullyRevealed(t *testing.T) {
	g, _ := newGrid(t, ascending)
	assert.False(t, g.FullyRevealed())
	assert.True(t, g.HasHidden())

	for i := range GridSize - 1 {
		g.Reveal(i)
	}
	assert.False(t, g.FullyRevealed())

	g.card(GridSize - 1).Cleared = true
	assert.True(t, g.FullyRevealed(), "cleared cards do not need revealing")
	assert.False(t, g.HasHidden())
}

func TestGridScores(t *testing.T) {
	g, _ := newGrid(t, [GridSize]int{-2, -1, 0, 12, 1, 1, 1, 1, 5, 5, 5, 5})
	assert.Zero(t, g.VisibleSum())
	assert.Equal(t, 33, g.RawScore(), "hidden cards count at face value")

	g.Reveal(0)
	g.Reveal(3)
	assert.Equal(t, 10, g.VisibleSum())

	g.card(3).Cleared = true
	g.card(3).Value = 0
	assert.Equal(t, -2, g.VisibleSum())
	assert.Equal(t, 21, g.RawScore())

	g.RevealAll()
	assert.True(t, g.FullyRevealed())
	assert.Equal(t, 21, g.RawScore())
}

func TestGridString(t *testing.T) {
	g, _ := newGrid(t, ascending)
	g.Reveal(0)
	g.card(5).Cleared = true
	assert.Equal(t, " 1 ?? ?? ??\n?? -- ?? ??\n?? ?? ?? ??", g.String())

	var empty Grid
	assert.Equal(t, "<empty grid>", empty.String())
	assert.Zero(t, empty.Len())
}
