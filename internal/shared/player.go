package shared

import "sort"

// Player holds one side's hand. Durak is strictly two-player; the attacker
// and defender roles live on the game state, not here.
type Player struct {
	Hand []Card `json:"hand"`
}

// NewPlayer creates a player with an empty hand.
func NewPlayer() *Player {
	return &Player{Hand: []Card{}}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the player holds the given card.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// HasSuit reports whether the player holds any card of the given suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, c := range p.Hand {
		if c.Suit() == suit {
			return true
		}
	}
	return false
}

// HasRank reports whether the player holds any card of the given rank.
func (p *Player) HasRank(rank Rank) bool {
	for _, c := range p.Hand {
		if c.Rank() == rank {
			return true
		}
	}
	return false
}

// LowestTrump returns the player's lowest-ranked card of the trump suit.
func (p *Player) LowestTrump(trump Suit) (Card, bool) {
	best := NoCard
	for _, c := range p.Hand {
		if c.Suit() != trump {
			continue
		}
		if best == NoCard || c.Rank() < best.Rank() {
			best = c
		}
	}
	return best, best != NoCard
}

// Size returns the number of cards in hand.
func (p *Player) Size() int {
	return len(p.Hand)
}

// Sorted returns the hand in ascending card-id order, without modifying it.
func (p *Player) Sorted() []Card {
	out := make([]Card, len(p.Hand))
	copy(out, p.Hand)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the player.
func (p *Player) Clone() *Player {
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return &Player{Hand: hand}
}
