package simulator

import (
	"testing"

	"github.com/lox/skyjo/internal/game"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestRenderSnapshot(t *testing.T) {
	t.Parallel()
	grid := make([]game.CardView, game.GridSize)
	for i := range grid {
		grid[i] = game.CardView{Value: intp(i - 2), Visible: true}
	}
	grid[3] = game.CardView{}
	grid[4] = game.CardView{Value: intp(0), Visible: true, Cleared: true}

	snap := game.Snapshot{
		Code:    "ABC123",
		Phase:   game.PhaseGameOver,
		Round:   4,
		Winners: []string{"p1"},
		Players: []game.PlayerView{
			{ID: "p0", Name: "greedy-0", Grid: grid, RoundScore: 40, Penalized: true, Total: 104},
			{ID: "p1", Name: "random-1", Total: 77},
		},
	}

	out := RenderSnapshot(snap)
	for _, want := range []string{"ABC123", "round 4", "greedy-0", "random-1", "??", "--", "-2", " 9", "(x2)", "total 104", "total 77"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderCard(t *testing.T) {
	t.Parallel()
	assert.Contains(t, renderCard(game.CardView{}), "??")
	assert.Contains(t, renderCard(game.CardView{Cleared: true, Value: intp(0)}), "--")
	assert.Contains(t, renderCard(game.CardView{Visible: true, Value: intp(7)}), " 7")
}
