package shared

// Suit identifies one of the four card suits.
type Suit int

const (
	Spades   Suit = 0
	Clubs    Suit = 1
	Diamonds Suit = 2
	Hearts   Suit = 3

	// SuitNone marks an unknown suit (trump before the reveal).
	SuitNone Suit = -1
)

// Rank identifies a card rank within a suit, low to high.
type Rank int

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	NumSuits = 4
	NumRanks = 9
	NumCards = NumSuits * NumRanks // 36
)

// Card is a single playing card, encoded as an integer in [0, NumCards).
// The suit is id/NumRanks, the rank is id%NumRanks. Cards are value data;
// copying is always safe.
type Card int

// NoCard marks an absent card: an uncovered table slot, or the trump card
// before the reveal.
const NoCard Card = -1

var suitSymbols = [NumSuits]string{"♠", "♣", "♦", "♥"}

var rankSymbols = [NumRanks]string{"6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// MakeCard builds the card with the given suit and rank.
func MakeCard(s Suit, r Rank) Card {
	return Card(int(s)*NumRanks + int(r))
}

// Valid reports whether c is a real card identifier.
func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(int(c) / NumRanks)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(int(c) % NumRanks)
}

// String renders the card as rank followed by suit symbol, e.g. "A♥".
func (c Card) String() string {
	if !c.Valid() {
		return "None"
	}
	return rankSymbols[c.Rank()] + suitSymbols[c.Suit()]
}

// String returns the suit symbol.
func (s Suit) String() string {
	if s < 0 || s >= NumSuits {
		return "?"
	}
	return suitSymbols[s]
}

// String returns the rank symbol.
func (r Rank) String() string {
	if r < 0 || r >= NumRanks {
		return "?"
	}
	return rankSymbols[r]
}

// CanDefend reports whether defense may cover attack given the trump suit:
// same suit and higher rank, a trump against a non-trump, or a higher trump
// against a trump. A non-trump can never cover a trump.
func CanDefend(defense, attack Card, trump Suit) bool {
	if attack.Suit() == defense.Suit() && defense.Rank() > attack.Rank() {
		return true
	}
	if defense.Suit() == trump && attack.Suit() != trump {
		return true
	}
	if attack.Suit() == trump && defense.Suit() == trump && defense.Rank() > attack.Rank() {
		return true
	}
	return false
}
