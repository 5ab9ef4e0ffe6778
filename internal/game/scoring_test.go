package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRound(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       []int // seat 0 is the initiator
		initiator string
		want      []int
		penalized bool
	}{
		{"initiator not lowest is doubled", []int{12, 15, 8}, "p0", []int{24, 15, 8}, true},
		{"initiator strictly lowest", []int{3, 15, 8}, "p0", []int{3, 15, 8}, false},
		{"tie counts against initiator", []int{8, 15, 8}, "p0", []int{16, 15, 8}, true},
		{"zero is not doubled", []int{0, 0, 4}, "p0", []int{0, 0, 4}, false},
		{"negative is not doubled", []int{-3, -5, 4}, "p0", []int{-3, -5, 4}, false},
		{"no initiator", []int{12, 15, 8}, "", []int{12, 15, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]*Player, len(tt.raw))
			for i, raw := range tt.raw {
				players[i] = &Player{ID: seatID(i), RawScore: raw, Penalized: true}
			}
			scoreRound(players, tt.initiator)

			for i, p := range players {
				assert.Equal(t, tt.want[i], p.RoundScore, "seat %d", i)
				if i > 0 {
					assert.False(t, p.Penalized)
				}
			}
			assert.Equal(t, tt.penalized, players[0].Penalized)
		})
	}
}

func TestColumnClear(t *testing.T) {
	t.Parallel()
	grid := [GridSize]int{
		5, 1, 7, 3,
		5, 4, 7, 6,
		11, 8, 7, 9,
	}
	r := newTestRoom(t, 2, WithDeckFactory(stacked(0, [][GridSize]int{grid, ascending}, 5)))
	require.NoError(t, r.Start(Options{}))
	revealSetup(t, r, [2]int{0, 4}, [2]int{0, 1})
	require.Equal(t, "p0", r.ActivePlayer())

	mustApply(t, r, "p0", DrawDeck{})
	mustApply(t, r, "p0", ReplaceDrawn{Index: 8})

	g := &r.players[0].Grid
	for _, i := range []int{0, 4, 8} {
		c := g.Card(i)
		assert.True(t, c.Cleared, "index %d", i)
		assert.Zero(t, c.Value, "index %d", i)
	}
	for _, i := range []int{1, 2, 3, 5, 6, 7, 9, 10, 11} {
		assert.False(t, g.Card(i).Cleared, "index %d", i)
	}
	assert.False(t, g.Card(2).Visible, "other columns untouched")

	snap := r.Snapshot()
	assert.Equal(t, []ColumnClear{{PlayerID: "p0", Column: 0, Value: 5}}, snap.LastClears)
	assert.Equal(t, 11, *snap.DiscardTop.Value, "only the displaced card is discarded")
	assert.Equal(t, r.deck.Total(), r.Counts().Total())

	// Cleared cards stay in place and do not count.
	assert.Equal(t, 1+7+3+4+7+6+8+7+9, g.RawScore())

	mustApply(t, r, "p1", DrawDiscard{Index: 11})
	assert.Empty(t, r.Snapshot().LastClears)
}

func TestLastClearsResetWhenNextPlayerDraws(t *testing.T) {
	t.Parallel()
	grid := [GridSize]int{
		5, 1, 7, 3,
		5, 4, 7, 6,
		11, 8, 7, 9,
	}
	r := newTestRoom(t, 2, WithDeckFactory(stacked(0, [][GridSize]int{grid, ascending}, 5, 2)))
	require.NoError(t, r.Start(Options{}))
	revealSetup(t, r, [2]int{0, 4}, [2]int{0, 1})

	mustApply(t, r, "p0", DrawDeck{})
	mustApply(t, r, "p0", ReplaceDrawn{Index: 8})
	require.Len(t, r.Snapshot().LastClears, 1)

	mustApply(t, r, "p1", DrawDeck{})
	snap := r.Snapshot()
	require.Equal(t, TurnPlacing, snap.Turn)
	assert.Empty(t, snap.LastClears, "p0's clear belongs to the finished turn")
	assert.Equal(t, 1, snap.Active)
}

func TestColumnClearIsSimultaneous(t *testing.T) {
	t.Parallel()
	grid := [GridSize]int{
		2, 2, 9, 0,
		2, 2, 9, 0,
		2, 2, 1, 0,
	}
	r := newTestRoom(t, 2, WithDeckFactory(stacked(0, [][GridSize]int{grid, ascending})))
	require.NoError(t, r.Start(Options{}))
	showAllBut(r, 0, 3)

	clears := clearColumns(r.players[0])
	assert.Equal(t, []ColumnClear{
		{PlayerID: "p0", Column: 0, Value: 2},
		{PlayerID: "p0", Column: 1, Value: 2},
	}, clears)
	assert.False(t, r.players[0].Grid.Card(7).Cleared, "hidden card blocks column 3")
	assert.False(t, r.players[0].Grid.Card(2).Cleared)

	assert.Empty(t, clearColumns(r.players[0]), "cleared columns never clear again")
}

func TestStandingsShareRanks(t *testing.T) {
	t.Parallel()
	r := newTestRoom(t, 4)
	for i, total := range []int{40, 12, 40, 12} {
		r.players[i].Total = total
	}

	got := r.Standings()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"p1", "p3", "p0", "p2"},
		[]string{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID, got[3].PlayerID})
	assert.Equal(t, []int{1, 1, 3, 3}, []int{got[0].Rank, got[1].Rank, got[2].Rank, got[3].Rank})
	assert.Nil(t, r.Winners(), "no winners before game over")
}
