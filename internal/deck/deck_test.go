package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/skyjo/internal/randutil"
)

func TestNewDeckDistribution(t *testing.T) {
	d := New(randutil.New(42))
	require.Equal(t, Size, d.Len())
	require.Equal(t, Size, d.Total())

	counts := make(map[int]int)
	for d.Len() > 0 {
		id, err := d.Draw()
		require.NoError(t, err)
		c := d.Card(id)
		assert.False(t, c.Visible)
		assert.False(t, c.Cleared)
		counts[c.Value]++
	}
	assert.Equal(t, Distribution, counts)
}

func TestShuffleIsSeeded(t *testing.T) {
	drawAll := func(seed int64) []int {
		d := New(randutil.New(seed))
		out := make([]int, 0, Size)
		for d.Len() > 0 {
			id, err := d.Draw()
			require.NoError(t, err)
			out = append(out, d.Card(id).Value)
		}
		return out
	}

	assert.Equal(t, drawAll(7), drawAll(7))
	assert.NotEqual(t, drawAll(7), drawAll(8))
}

func TestShuffleCoversPositions(t *testing.T) {
	// Over many shuffles of a small deck, every card should reach every
	// position at least once.
	rng := randutil.New(1)
	seen := [4][4]bool{}
	for range 500 {
		d := NewFromValues([]int{0, 1, 2, 3})
		d.Shuffle(rng)
		for pos := 3; pos >= 0; pos-- {
			id, err := d.Draw()
			require.NoError(t, err)
			seen[id][pos] = true
		}
	}
	for id := range seen {
		for pos := range seen[id] {
			assert.True(t, seen[id][pos], "card %d never landed at %d", id, pos)
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	d := NewFromValues([]int{5})
	id, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, 5, d.Card(id).Value)

	id, err = d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, NoCard, id)
}

func TestDiscardPile(t *testing.T) {
	d := NewFromValues([]int{1, 2, 3})

	_, ok := d.TopDiscard()
	assert.False(t, ok)
	_, ok = d.PopDiscard()
	assert.False(t, ok)

	top, err := d.Draw()
	require.NoError(t, err)
	d.PushDiscard(top)

	card, ok := d.TopDiscard()
	require.True(t, ok)
	assert.Equal(t, 3, card.Value)
	assert.True(t, card.Visible, "discarded cards are face up")
	assert.Equal(t, 1, d.DiscardLen())
	assert.Equal(t, 2, d.Len())

	id, ok := d.PopDiscard()
	require.True(t, ok)
	assert.Equal(t, top, id)
	assert.Zero(t, d.DiscardLen())
}

func TestPilesAreCopies(t *testing.T) {
	t.Parallel()
	d := NewFromValues([]int{1, 2, 3})
	id, err := d.Draw()
	require.NoError(t, err)
	d.PushDiscard(id)

	draw, discard := d.Piles()
	assert.Equal(t, []CardID{0, 1}, draw)
	assert.Equal(t, []CardID{2}, discard)

	draw[0] = 9
	again, _ := d.Piles()
	assert.Equal(t, CardID(0), again[0])
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "??", Card{Value: 4}.String())
	assert.Equal(t, " 4", Card{Value: 4, Visible: true}.String())
	assert.Equal(t, "-2", Card{Value: -2, Visible: true}.String())
	assert.Equal(t, "--", Card{Visible: true, Cleared: true}.String())
}
