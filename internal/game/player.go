package game

// SetupReveals is the number of cards each player turns over before play.
const SetupReveals = 2

// Player is a seated participant. ID is the caller's stable identity and
// survives reconnections; the engine never sees connections.
type Player struct {
	ID    string
	Name  string
	Grid  Grid
	Total int

	// Per-round fields, reset when a round is dealt.
	RoundScore int
	RawScore   int // score before the risk-it-all penalty
	Revealed   int // setup reveals made so far
	Penalized  bool
}

// NewPlayer creates a player with no cards.
func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}

func (p *Player) resetRound(g Grid) {
	p.Grid = g
	p.RoundScore = 0
	p.RawScore = 0
	p.Revealed = 0
	p.Penalized = false
}

// SetupDone reports whether the player has made both setup reveals.
func (p *Player) SetupDone() bool {
	return p.Revealed >= SetupReveals
}
