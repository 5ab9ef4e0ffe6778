package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/skyjo/internal/deck"
)

// Table limits and defaults.
const (
	MinPlayers          = 2
	MaxPlayers          = 8
	DefaultWinThreshold = 100
)

// Options are chosen when a game starts.
type Options struct {
	// WinThreshold ends the game once any total reaches it. Zero means
	// DefaultWinThreshold.
	WinThreshold int
	// SingleRound ends the game after the first round regardless of totals.
	SingleRound bool
}

func (o Options) withDefaults() Options {
	if o.WinThreshold <= 0 {
		o.WinThreshold = DefaultWinThreshold
	}
	return o
}

// RoomOption configures a Room during creation.
type RoomOption func(*Room)

// WithMaxPlayers caps the number of seats. Values outside
// [MinPlayers, MaxPlayers] are ignored.
func WithMaxPlayers(n int) RoomOption {
	return func(r *Room) {
		if n >= MinPlayers && n <= MaxPlayers {
			r.maxPlayers = n
		}
	}
}

// WithDeckFactory replaces the shuffled 150-card deck dealt each round.
func WithDeckFactory(fn func(*rand.Rand) *deck.Deck) RoomOption {
	return func(r *Room) {
		r.newDeck = fn
	}
}

// Room holds the complete state of one game table.
type Room struct {
	code       string
	players    []*Player // seat order is turn order
	phase      Phase
	turn       TurnState
	active     int
	round      int
	opts       Options
	deck       *deck.Deck
	pending    deck.CardID
	initiator  string
	lastClears []ColumnClear

	rng        *rand.Rand
	newDeck    func(*rand.Rand) *deck.Deck
	maxPlayers int
}

// NewRoom creates an empty room in the lobby. rng drives every shuffle.
func NewRoom(code string, rng *rand.Rand, opts ...RoomOption) *Room {
	if rng == nil {
		panic("rng is required for room creation")
	}
	r := &Room{
		code:       code,
		phase:      PhaseLobby,
		turn:       TurnIdle,
		pending:    deck.NoCard,
		rng:        rng,
		newDeck:    deck.New,
		maxPlayers: MaxPlayers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Room) Code() string      { return r.code }
func (r *Room) Phase() Phase      { return r.phase }
func (r *Room) Turn() TurnState   { return r.turn }
func (r *Room) Round() int        { return r.round }
func (r *Room) Options() Options  { return r.opts }
func (r *Room) Initiator() string { return r.initiator }
func (r *Room) PlayerCount() int  { return len(r.players) }
func (r *Room) IsEmpty() bool     { return len(r.players) == 0 }
func (r *Room) MaxPlayers() int   { return r.maxPlayers }

// ActivePlayer returns the ID of the player holding turn control, or "" when
// no turn is in progress.
func (r *Room) ActivePlayer() string {
	if r.phase != PhasePlaying {
		return ""
	}
	return r.players[r.active].ID
}

func (r *Room) seat(id string) int {
	for i, p := range r.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// HasPlayer reports whether id holds a seat.
func (r *Room) HasPlayer(id string) bool {
	return r.seat(id) >= 0
}

// Join seats a new player in the lobby. Joining again with a known ID only
// refreshes the display name, which is how reconnecting clients resync.
func (r *Room) Join(id, name string) error {
	if id == "" {
		return fmt.Errorf("%w: player id is required", ErrValidation)
	}
	if i := r.seat(id); i >= 0 {
		if name != "" {
			r.players[i].Name = name
		}
		return nil
	}
	if r.phase != PhaseLobby {
		return ErrAlreadyStarted
	}
	if len(r.players) >= r.maxPlayers {
		return fmt.Errorf("%w: %d/%d seats taken", ErrRoomFull, len(r.players), r.maxPlayers)
	}
	r.players = append(r.players, NewPlayer(id, name))
	return nil
}

// Leave frees a seat. Seats are fixed once the game starts so a
// disconnected player can come back.
func (r *Room) Leave(id string) error {
	i := r.seat(id)
	if i < 0 {
		return ErrPlayerNotFound
	}
	if r.phase != PhaseLobby {
		return ErrGameInProgress
	}
	r.players = append(r.players[:i], r.players[i+1:]...)
	return nil
}

// Start closes the lobby and deals the first round.
func (r *Room) Start(opts Options) error {
	if r.phase != PhaseLobby {
		return ErrAlreadyStarted
	}
	if len(r.players) < MinPlayers {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientPlayers, MinPlayers, len(r.players))
	}
	r.opts = opts.withDefaults()
	return r.dealRound()
}

// NextRound deals a new round after ROUND_FINISHED.
func (r *Room) NextRound() error {
	if r.phase != PhaseRoundFinished {
		return fmt.Errorf("%w: phase is %s", ErrNotReady, r.phase)
	}
	return r.dealRound()
}

// Restart begins a fresh game with the same seats once the previous one is
// over. Totals go back to zero.
func (r *Room) Restart() error {
	if r.phase != PhaseGameOver {
		return fmt.Errorf("%w: phase is %s", ErrGameInProgress, r.phase)
	}
	saved := make([]int, len(r.players))
	for i, p := range r.players {
		saved[i] = p.Total
		p.Total = 0
	}
	round := r.round
	r.round = 0
	if err := r.dealRound(); err != nil {
		for i, p := range r.players {
			p.Total = saved[i]
		}
		r.round = round
		return err
	}
	return nil
}

// dealRound builds a new deck, seeds the discard pile and deals every
// player a fresh grid. Nothing is committed unless the whole deal succeeds.
func (r *Room) dealRound() error {
	d := r.newDeck(r.rng)

	first, err := d.Draw()
	if err != nil {
		return fmt.Errorf("seed discard: %w", err)
	}
	d.PushDiscard(first)

	grids := make([]Grid, len(r.players))
	for i := range r.players {
		g, err := dealGrid(d)
		if err != nil {
			return fmt.Errorf("deal player %d: %w", i, err)
		}
		grids[i] = g
	}

	for i, p := range r.players {
		p.resetRound(grids[i])
	}
	r.deck = d
	r.pending = deck.NoCard
	r.initiator = ""
	r.lastClears = nil
	r.active = 0
	r.round++
	r.phase = PhaseSetup
	r.turn = TurnIdle
	return nil
}

// Apply validates and applies one action for playerID.
func (r *Room) Apply(playerID string, a Action) error {
	if a == nil {
		return fmt.Errorf("%w: missing action", ErrValidation)
	}
	if err := a.validate(); err != nil {
		return err
	}
	i := r.seat(playerID)
	if i < 0 {
		return ErrPlayerNotFound
	}

	switch r.phase {
	case PhaseSetup:
		sr, ok := a.(SetupReveal)
		if !ok {
			return fmt.Errorf("%w: %s during %s", ErrIllegalTransition, a.Kind(), r.phase)
		}
		return r.setupReveal(i, sr.Index)
	case PhasePlaying:
		return r.play(i, a)
	default:
		return fmt.Errorf("%w: %s during %s", ErrIllegalTransition, a.Kind(), r.phase)
	}
}

func (r *Room) setupReveal(seat, index int) error {
	p := r.players[seat]
	if p.SetupDone() {
		return fmt.Errorf("%w: already revealed %d cards", ErrIllegalTransition, SetupReveals)
	}
	if !p.Grid.Reveal(index) {
		return nil
	}
	p.Revealed++

	for _, other := range r.players {
		if !other.SetupDone() {
			return nil
		}
	}
	r.beginPlay()
	return nil
}

// beginPlay hands the first turn to the player showing the highest sum,
// the lowest seat winning ties.
func (r *Room) beginPlay() {
	starter := 0
	best := r.players[0].Grid.VisibleSum()
	for i, p := range r.players[1:] {
		if s := p.Grid.VisibleSum(); s > best {
			best, starter = s, i+1
		}
	}
	r.phase = PhasePlaying
	r.turn = TurnChoosing
	r.active = starter
}

func (r *Room) play(seat int, a Action) error {
	if seat != r.active {
		return ErrNotYourTurn
	}
	p := r.players[seat]

	switch act := a.(type) {
	case DrawDeck:
		if r.turn != TurnChoosing {
			return r.wrongTurn(a)
		}
		id, err := r.deck.Draw()
		if err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		r.deck.Card(id).Visible = true
		r.pending = id
		r.turn = TurnPlacing
		r.lastClears = nil
		return nil

	case DrawDiscard:
		if r.turn != TurnChoosing {
			return r.wrongTurn(a)
		}
		if err := r.checkReplaceable(p, act.Index); err != nil {
			return err
		}
		id, ok := r.deck.PopDiscard()
		if !ok {
			return fmt.Errorf("%w: discard pile is empty", ErrIllegalTransition)
		}
		r.deck.PushDiscard(p.Grid.Replace(act.Index, id))

	case ReplaceDrawn:
		if r.turn != TurnPlacing || r.pending == deck.NoCard {
			return r.wrongTurn(a)
		}
		if err := r.checkReplaceable(p, act.Index); err != nil {
			return err
		}
		r.deck.PushDiscard(p.Grid.Replace(act.Index, r.pending))
		r.pending = deck.NoCard

	case DiscardDrawn:
		if r.turn != TurnPlacing || r.pending == deck.NoCard {
			return r.wrongTurn(a)
		}
		// The reveal is mandatory, so the target must be a hidden card.
		// A grid with nothing left to reveal cannot occur on a live turn,
		// but it is not the player's fault if it does.
		if p.Grid.HasHidden() {
			c := p.Grid.Card(act.Reveal)
			if c.Visible || c.Cleared {
				return fmt.Errorf("%w: card %d is not hidden", ErrValidation, act.Reveal)
			}
		}
		r.deck.PushDiscard(r.pending)
		r.pending = deck.NoCard
		p.Grid.Reveal(act.Reveal)

	default:
		return r.wrongTurn(a)
	}

	r.endTurn(seat)
	return nil
}

func (r *Room) wrongTurn(a Action) error {
	return fmt.Errorf("%w: %s while %s", ErrIllegalTransition, a.Kind(), r.turn)
}

func (r *Room) checkReplaceable(p *Player, index int) error {
	if p.Grid.Card(index).Cleared {
		return fmt.Errorf("%w: card %d was cleared", ErrValidation, index)
	}
	return nil
}

// endTurn runs the column rule for the player who just acted, records the
// final-turn initiator and passes control on. The round ends instead when
// control would return to the initiator.
func (r *Room) endTurn(seat int) {
	p := r.players[seat]
	r.lastClears = clearColumns(p)

	if r.initiator == "" && p.Grid.FullyRevealed() {
		r.initiator = p.ID
	}

	next := (seat + 1) % len(r.players)
	if r.initiator != "" && r.players[next].ID == r.initiator {
		r.finishRound()
		return
	}
	r.active = next
	r.turn = TurnChoosing
}
