// Package observer renders a game from one player's viewpoint and encodes
// it into a flat feature vector. It reads only the engine's exported state;
// the rules engine itself knows nothing about observations.
package observer

import (
	"fmt"
	"strings"

	"durak-game/internal/game"
	"durak-game/internal/shared"
)

// Feature vector layout, concatenated in this order.
const (
	playerSize      = game.NumPlayers // one-hot: observing player
	trumpSuitSize   = shared.NumSuits // one-hot: trump suit
	phaseSize       = 4               // one-hot: round phase
	deckSize        = 1               // remaining deck, scaled to [0,1]
	attackerIndSize = 1               // observer is the attacker
	defenderIndSize = 1               // observer is the defender
	trumpCardSize   = shared.NumCards // one-hot: revealed trump card
	myCardsSize     = shared.NumCards // multi-hot: observer's hand
	tableAttackSize = shared.NumCards // multi-hot: attack cards on table
	tableDefSize    = shared.NumCards // multi-hot: defense cards on table
)

// EncodingSize is the length of the vector produced by Encode.
const EncodingSize = playerSize + trumpSuitSize + phaseSize + deckSize +
	attackerIndSize + defenderIndSize + trumpCardSize + myCardsSize +
	tableAttackSize + tableDefSize // 157

// Encode flattens the game, as seen by player, into a fixed-length float32
// vector for learning agents. The opponent's hand is never encoded.
func Encode(g *game.Game, player int) []float32 {
	v := make([]float32, EncodingSize)
	idx := 0

	v[idx+player] = 1
	idx += playerSize

	if g.TrumpSuit != shared.SuitNone {
		v[idx+int(g.TrumpSuit)] = 1
	}
	idx += trumpSuitSize

	v[idx+int(g.Phase)] = 1
	idx += phaseSize

	v[idx] = float32(g.Deck.Remaining()) / float32(shared.NumCards)
	idx += deckSize

	if player == g.Attacker {
		v[idx] = 1
	}
	idx += attackerIndSize
	if player == g.Defender {
		v[idx] = 1
	}
	idx += defenderIndSize

	if g.TrumpCard != shared.NoCard {
		v[idx+int(g.TrumpCard)] = 1
	}
	idx += trumpCardSize

	for _, c := range g.Players[player].Hand {
		v[idx+int(c)] = 1
	}
	idx += myCardsSize

	for _, s := range g.Table.Slots {
		v[idx+int(s.Attack)] = 1
		if s.Covered() {
			v[idx+tableAttackSize+int(s.Defense)] = 1
		}
	}

	return v
}

// String renders the public state plus the given player's private hand.
func String(g *game.Game, player int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Player %d viewpoint", player)
	fmt.Fprintf(&b, " | Phase: %s", g.Phase)
	if g.TrumpCard != shared.NoCard {
		fmt.Fprintf(&b, " | Trump card: %s", g.TrumpCard)
	}
	fmt.Fprintf(&b, " | Attacker=%d, Defender=%d", g.Attacker, g.Defender)

	b.WriteString(" | My hand: [")
	for i, c := range g.Players[player].Sorted() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]")

	fmt.Fprintf(&b, " | Table: [%s]", g.Table)
	fmt.Fprintf(&b, " | DeckRemaining: %d", g.Deck.Remaining())
	return b.String()
}
