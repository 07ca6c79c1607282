package shared

import (
	"fmt"
	"math/rand/v2"
)

// Deck is an ordered, already-shuffled sequence of all 36 cards plus a
// cursor marking how many have been dealt or drawn. The order never changes
// after construction; producing it (default shuffle, fixed seed, or a
// pre-specified order) is the caller's concern.
type Deck struct {
	Cards []Card `json:"cards"`
	Pos   int    `json:"pos"`
}

// NewDeck builds a deck from an externally produced ordering of card
// identifiers. The order must contain every id in [0, NumCards) exactly once.
func NewDeck(order []int) (*Deck, error) {
	if len(order) != NumCards {
		return nil, fmt.Errorf("deck must contain exactly %d cards, got %d", NumCards, len(order))
	}
	var seen [NumCards]bool
	cards := make([]Card, NumCards)
	for i, id := range order {
		if id < 0 || id >= NumCards {
			return nil, fmt.Errorf("card id %d out of range [0,%d)", id, NumCards)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate card id %d in deck", id)
		}
		seen[id] = true
		cards[i] = Card(id)
	}
	return &Deck{Cards: cards}, nil
}

// ShuffledOrder returns a random permutation of all card identifiers,
// suitable as NewDeck input.
func ShuffledOrder(r *rand.Rand) []int {
	order := make([]int, NumCards)
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// Peek returns the next undealt card without advancing the cursor.
func (d *Deck) Peek() (Card, bool) {
	if d.Exhausted() {
		return NoCard, false
	}
	return d.Cards[d.Pos], true
}

// Draw deals the next card and advances the cursor.
func (d *Deck) Draw() (Card, bool) {
	if d.Exhausted() {
		return NoCard, false
	}
	c := d.Cards[d.Pos]
	d.Pos++
	return c, true
}

// Bottom returns the last card of the deck; it is revealed as the trump and
// is the final card drawn during refills.
func (d *Deck) Bottom() Card {
	return d.Cards[len(d.Cards)-1]
}

// Remaining returns how many cards have not been dealt yet.
func (d *Deck) Remaining() int {
	return len(d.Cards) - d.Pos
}

// Exhausted reports whether every card has been dealt.
func (d *Deck) Exhausted() bool {
	return d.Pos >= len(d.Cards)
}

// Clone returns an independent copy of the deck.
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return &Deck{Cards: cards, Pos: d.Pos}
}
