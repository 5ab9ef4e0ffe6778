package game

import "github.com/lox/skyjo/internal/deck"

// CardView is a card as every seat may see it. Value is nil while the card
// is face down.
type CardView struct {
	Value   *int `json:"value"`
	Visible bool `json:"visible"`
	Cleared bool `json:"cleared,omitempty"`
}

func viewOf(c deck.Card) CardView {
	v := CardView{Visible: c.Visible, Cleared: c.Cleared}
	if c.Visible || c.Cleared {
		val := c.Value
		v.Value = &val
	}
	return v
}

// PlayerView is the public state of one seat.
type PlayerView struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Grid          []CardView `json:"grid,omitempty"`
	RoundScore    int        `json:"round_score"`
	RawScore      int        `json:"raw_score"`
	Total         int        `json:"total"`
	Revealed      int        `json:"revealed"`
	Penalized     bool       `json:"penalized,omitempty"`
	FullyRevealed bool       `json:"fully_revealed,omitempty"`
}

// Snapshot is the authoritative state of a room after a call. It holds no
// references into the room and is safe to share between goroutines.
type Snapshot struct {
	Code         string        `json:"code"`
	Phase        Phase         `json:"phase"`
	Turn         TurnState     `json:"turn"`
	Round        int           `json:"round"`
	Active       int           `json:"active"` // seat index, -1 outside PLAYING
	ActivePlayer string        `json:"active_player,omitempty"`
	Players      []PlayerView  `json:"players"`
	DeckSize     int           `json:"deck_size"`
	DiscardSize  int           `json:"discard_size"`
	DiscardTop   *CardView     `json:"discard_top,omitempty"`
	Pending      *CardView     `json:"pending,omitempty"`
	Initiator    string        `json:"initiator,omitempty"`
	WinThreshold int           `json:"win_threshold"`
	SingleRound  bool          `json:"single_round,omitempty"`
	LastClears   []ColumnClear `json:"last_clears,omitempty"`
	Standings    []Standing    `json:"standings"`
	Winners      []string      `json:"winners,omitempty"`
}

// Player returns the view of the seat with the given ID.
func (s Snapshot) Player(id string) (PlayerView, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerView{}, false
}

// Snapshot copies the current state.
func (r *Room) Snapshot() Snapshot {
	s := Snapshot{
		Code:         r.code,
		Phase:        r.phase,
		Turn:         r.turn,
		Round:        r.round,
		Active:       -1,
		ActivePlayer: r.ActivePlayer(),
		Players:      make([]PlayerView, len(r.players)),
		Initiator:    r.initiator,
		WinThreshold: r.opts.WinThreshold,
		SingleRound:  r.opts.SingleRound,
		Standings:    r.Standings(),
		Winners:      r.Winners(),
	}
	if r.phase == PhasePlaying {
		s.Active = r.active
	}
	if len(r.lastClears) > 0 {
		s.LastClears = append([]ColumnClear(nil), r.lastClears...)
	}

	for i, p := range r.players {
		pv := PlayerView{
			ID:         p.ID,
			Name:       p.Name,
			RoundScore: p.RoundScore,
			RawScore:   p.RawScore,
			Total:      p.Total,
			Revealed:   p.Revealed,
			Penalized:  p.Penalized,
		}
		if p.Grid.Len() > 0 {
			pv.Grid = make([]CardView, GridSize)
			for j := range GridSize {
				pv.Grid[j] = viewOf(p.Grid.Card(j))
			}
			pv.FullyRevealed = p.Grid.FullyRevealed()
		}
		s.Players[i] = pv
	}

	if r.deck != nil {
		s.DeckSize = r.deck.Len()
		s.DiscardSize = r.deck.DiscardLen()
		if top, ok := r.deck.TopDiscard(); ok {
			v := viewOf(top)
			s.DiscardTop = &v
		}
		if r.pending != deck.NoCard {
			v := viewOf(*r.deck.Card(r.pending))
			s.Pending = &v
		}
	}
	return s
}

// Counts is where the cards of the current round are.
type Counts struct {
	Deck    int
	Discard int
	Grids   int
	Pending int
	// Distinct is the number of different card IDs across all of the above.
	// It equals Total unless a card sits in two places at once.
	Distinct int
}

// Total is the number of cards accounted for; it equals the deck size
// throughout a round.
func (c Counts) Total() int {
	return c.Deck + c.Discard + c.Grids + c.Pending
}

// Counts reports card locations for the current round.
func (r *Room) Counts() Counts {
	var c Counts
	if r.deck == nil {
		return c
	}
	draw, discard := r.deck.Piles()
	c.Deck = len(draw)
	c.Discard = len(discard)

	ids := append(draw, discard...)
	for _, p := range r.players {
		if p.Grid.Len() > 0 {
			ids = append(ids, p.Grid.slots[:]...)
			c.Grids += p.Grid.Len()
		}
	}
	if r.pending != deck.NoCard {
		c.Pending = 1
		ids = append(ids, r.pending)
	}

	var seen [256]bool
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			c.Distinct++
		}
	}
	return c
}
