package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when drawing from an exhausted draw pile. Rounds
// are sized so this should not happen; callers treat it as an invariant
// violation rather than a player mistake.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck owns every card of a round. Cards live in an arena and the draw and
// discard piles hold IDs into it, so a card is in exactly one place at a
// time.
type Deck struct {
	cards   []Card
	draw    []CardID // top is the last element
	discard []CardID // top is the last element
}

// New builds a full 150-card deck and shuffles the draw pile with rng.
func New(rng *rand.Rand) *Deck {
	d := NewFromValues(values())
	d.Shuffle(rng)
	return d
}

// NewFromValues builds an unshuffled deck holding the given values. The last
// value ends up on top of the draw pile. Used for deterministic set-ups.
func NewFromValues(vals []int) *Deck {
	d := &Deck{
		cards:   make([]Card, len(vals)),
		draw:    make([]CardID, len(vals)),
		discard: make([]CardID, 0, len(vals)),
	}
	for i, v := range vals {
		d.cards[i] = Card{ID: CardID(i), Value: v}
		d.draw[i] = CardID(i)
	}
	return d
}

// Shuffle randomizes the draw pile using Fisher-Yates
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.draw) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	}
}

// Card returns a pointer to the arena card with the given id.
func (d *Deck) Card(id CardID) *Card {
	return &d.cards[id]
}

// Draw removes and returns the top card of the draw pile.
func (d *Deck) Draw() (CardID, error) {
	n := len(d.draw)
	if n == 0 {
		return NoCard, ErrEmptyDeck
	}
	id := d.draw[n-1]
	d.draw = d.draw[:n-1]
	return id, nil
}

// PushDiscard puts a card face up on top of the discard pile.
func (d *Deck) PushDiscard(id CardID) {
	d.cards[id].Visible = true
	d.discard = append(d.discard, id)
}

// PopDiscard removes and returns the top of the discard pile.
func (d *Deck) PopDiscard() (CardID, bool) {
	n := len(d.discard)
	if n == 0 {
		return NoCard, false
	}
	id := d.discard[n-1]
	d.discard = d.discard[:n-1]
	return id, true
}

// TopDiscard returns the top of the discard pile without removing it.
func (d *Deck) TopDiscard() (Card, bool) {
	n := len(d.discard)
	if n == 0 {
		return Card{}, false
	}
	return d.cards[d.discard[n-1]], true
}

// Piles returns copies of the draw and discard piles, bottom first.
func (d *Deck) Piles() (draw, discard []CardID) {
	return append([]CardID(nil), d.draw...), append([]CardID(nil), d.discard...)
}

// Len returns the number of cards left in the draw pile.
func (d *Deck) Len() int {
	return len(d.draw)
}

// DiscardLen returns the number of cards in the discard pile.
func (d *Deck) DiscardLen() int {
	return len(d.discard)
}

// Total returns the number of cards in the arena.
func (d *Deck) Total() int {
	return len(d.cards)
}
