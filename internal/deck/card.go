package deck

import "fmt"

// Value bounds for a Skyjo card.
const (
	MinValue = -2
	MaxValue = 12
)

// CardID addresses a card in a deck's arena. IDs are stable for the
// lifetime of a round; moving a card between piles only moves its ID.
type CardID uint8

// NoCard marks an empty slot such as the pending drawn card.
const NoCard CardID = 0xFF

// Card is a single card. Value is fixed at deal time except when the
// column-clear rule zeroes it.
type Card struct {
	ID      CardID
	Value   int
	Visible bool
	Cleared bool
}

// String returns the face value for visible cards and "??" otherwise.
func (c Card) String() string {
	switch {
	case c.Cleared:
		return "--"
	case !c.Visible:
		return "??"
	default:
		return fmt.Sprintf("%2d", c.Value)
	}
}

// Distribution is the number of copies of each value in a full deck.
var Distribution = map[int]int{
	-2: 5,
	-1: 10,
	0:  15,
	1:  10,
	2:  10,
	3:  10,
	4:  10,
	5:  10,
	6:  10,
	7:  10,
	8:  10,
	9:  10,
	10: 10,
	11: 10,
	12: 10,
}

// Size is the number of cards in a full deck.
const Size = 150

// values returns the distribution expanded in ascending value order so the
// pre-shuffle layout never depends on map iteration.
func values() []int {
	out := make([]int, 0, Size)
	for v := MinValue; v <= MaxValue; v++ {
		for range Distribution[v] {
			out = append(out, v)
		}
	}
	return out
}
