package game

import "sort"

// ColumnClear records one column removed by the column rule. The cards stay
// in the grid worth 0; Value is the face value they had, kept for display.
type ColumnClear struct {
	PlayerID string `json:"player_id"`
	Column   int    `json:"column"`
	Value    int    `json:"value"`
}

// clearColumns applies the column rule to p's grid. Every qualifying column
// is found before any is cleared, so clears never chain.
func clearColumns(p *Player) []ColumnClear {
	g := &p.Grid
	var clears []ColumnClear
	for col := range GridCols {
		top := g.card(col)
		match := true
		for row := range GridRows {
			c := g.card(row*GridCols + col)
			if !c.Visible || c.Cleared || c.Value != top.Value {
				match = false
				break
			}
		}
		if match {
			clears = append(clears, ColumnClear{PlayerID: p.ID, Column: col, Value: top.Value})
		}
	}

	for _, cc := range clears {
		for row := range GridRows {
			c := g.card(row*GridCols + cc.Column)
			c.Cleared = true
			c.Value = 0
		}
	}
	return clears
}

// finishRound reveals everything, scores the round and decides whether the
// game is over. The column rule does not run again after the reveal.
func (r *Room) finishRound() {
	for _, p := range r.players {
		p.Grid.RevealAll()
		p.RawScore = p.Grid.RawScore()
	}
	scoreRound(r.players, r.initiator)

	over := r.opts.SingleRound
	for _, p := range r.players {
		p.Total += p.RoundScore
		if p.Total >= r.opts.WinThreshold {
			over = true
		}
	}

	r.turn = TurnIdle
	if over {
		r.phase = PhaseGameOver
	} else {
		r.phase = PhaseRoundFinished
	}
}

// scoreRound sets RoundScore from RawScore, applying the risk-it-all
// penalty: an initiator who did not finish strictly below every other
// player has a positive score doubled.
func scoreRound(players []*Player, initiator string) {
	var finisher *Player
	otherMin := 0
	seen := false
	for _, p := range players {
		p.RoundScore = p.RawScore
		p.Penalized = false
		if p.ID == initiator {
			finisher = p
			continue
		}
		if !seen || p.RawScore < otherMin {
			otherMin, seen = p.RawScore, true
		}
	}

	if finisher == nil || !seen {
		return
	}
	if finisher.RawScore >= otherMin && finisher.RawScore > 0 {
		finisher.RoundScore = 2 * finisher.RawScore
		finisher.Penalized = true
	}
}

// Standing is one line of the scoreboard.
type Standing struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Rank     int    `json:"rank"`
}

// Standings orders players by total, lowest first. Equal totals share a
// rank and keep seat order.
func (r *Room) Standings() []Standing {
	out := make([]Standing, len(r.players))
	for i, p := range r.players {
		out[i] = Standing{PlayerID: p.ID, Name: p.Name, Total: p.Total}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total < out[j].Total })
	for i := range out {
		if i > 0 && out[i].Total == out[i-1].Total {
			out[i].Rank = out[i-1].Rank
		} else {
			out[i].Rank = i + 1
		}
	}
	return out
}

// Winners returns the players sharing the lowest total once the game is
// over, and nil before that.
func (r *Room) Winners() []string {
	if r.phase != PhaseGameOver {
		return nil
	}
	var ids []string
	for _, s := range r.Standings() {
		if s.Rank == 1 {
			ids = append(ids, s.PlayerID)
		}
	}
	return ids
}
