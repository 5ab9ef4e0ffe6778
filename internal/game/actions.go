package game

import "fmt"

// ActionKind names an action on the wire and in logs.
type ActionKind string

const (
	KindSetupReveal  ActionKind = "SETUP_REVEAL"
	KindDrawDeck     ActionKind = "DRAW_DECK"
	KindDrawDiscard  ActionKind = "DRAW_DISCARD"
	KindReplaceDrawn ActionKind = "REPLACE_DRAWN"
	KindDiscardDrawn ActionKind = "DISCARD_DRAWN"
)

// Action is a player intent. The set of implementations is closed: one
// struct per kind, each carrying only the fields that kind needs.
type Action interface {
	Kind() ActionKind
	validate() error
}

// SetupReveal turns over one of the player's own cards during SETUP.
type SetupReveal struct{ Index int }

// DrawDeck takes the top of the draw pile into the pending slot.
type DrawDeck struct{}

// DrawDiscard takes the top of the discard pile and swaps it into Index.
type DrawDiscard struct{ Index int }

// ReplaceDrawn swaps the pending card into Index.
type ReplaceDrawn struct{ Index int }

// DiscardDrawn discards the pending card and reveals the hidden card at
// Reveal.
type DiscardDrawn struct{ Reveal int }

func (SetupReveal) Kind() ActionKind  { return KindSetupReveal }
func (DrawDeck) Kind() ActionKind     { return KindDrawDeck }
func (DrawDiscard) Kind() ActionKind  { return KindDrawDiscard }
func (ReplaceDrawn) Kind() ActionKind { return KindReplaceDrawn }
func (DiscardDrawn) Kind() ActionKind { return KindDiscardDrawn }

func (a SetupReveal) validate() error  { return checkIndex(a.Index) }
func (DrawDeck) validate() error       { return nil }
func (a DrawDiscard) validate() error  { return checkIndex(a.Index) }
func (a ReplaceDrawn) validate() error { return checkIndex(a.Index) }
func (a DiscardDrawn) validate() error { return checkIndex(a.Reveal) }

func checkIndex(i int) error {
	if !ValidIndex(i) {
		return fmt.Errorf("%w: grid index %d out of range [0,%d)", ErrValidation, i, GridSize)
	}
	return nil
}

// NewAction builds the action for kind. index is required for every kind
// except DRAW_DECK, which must not carry one.
func NewAction(kind ActionKind, index *int) (Action, error) {
	if kind == KindDrawDeck {
		if index != nil {
			return nil, fmt.Errorf("%w: %s takes no index", ErrValidation, kind)
		}
		return DrawDeck{}, nil
	}

	if index == nil {
		return nil, fmt.Errorf("%w: %s requires an index", ErrValidation, kind)
	}

	var a Action
	switch kind {
	case KindSetupReveal:
		a = SetupReveal{Index: *index}
	case KindDrawDiscard:
		a = DrawDiscard{Index: *index}
	case KindReplaceDrawn:
		a = ReplaceDrawn{Index: *index}
	case KindDiscardDrawn:
		a = DiscardDrawn{Reveal: *index}
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, kind)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}
