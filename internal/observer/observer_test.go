package observer

import (
	"strings"
	"testing"

	"durak-game/internal/game"
	"durak-game/internal/shared"
)

// dealtGame plays out the forced dealing of a sequential deck: player 0
// gets the even spades/clubs, player 1 the odd ones, A♥ is trump.
func dealtGame(t *testing.T, variant game.Variant) *game.Game {
	t.Helper()
	order := make([]int, shared.NumCards)
	for i := range order {
		order[i] = i
	}
	g, err := game.NewGame(order, variant)
	if err != nil {
		t.Fatal(err)
	}
	for g.IsChanceNode() {
		if err := g.Apply(g.LegalActions()[0]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestEncodeLayout(t *testing.T) {
	g := dealtGame(t, game.Classic)

	v := Encode(g, 0)
	if len(v) != EncodingSize {
		t.Fatalf("len = %d, want %d", len(v), EncodingSize)
	}

	// Section offsets, in layout order.
	const (
		trumpSuitOff = 2
		phaseOff     = 6
		deckOff      = 10
		attackerOff  = 11
		defenderOff  = 12
		trumpCardOff = 13
		myCardsOff   = 49
		tableAttOff  = 85
		tableDefOff  = 121
	)

	if v[0] != 1 || v[1] != 0 {
		t.Fatalf("player one-hot = %v %v", v[0], v[1])
	}
	if v[trumpSuitOff+int(shared.Hearts)] != 1 {
		t.Fatal("trump suit bit not set")
	}
	if v[phaseOff+int(game.PhaseAttack)] != 1 {
		t.Fatal("phase bit not set")
	}
	if got, want := v[deckOff], float32(24)/float32(36); got != want {
		t.Fatalf("deck scalar = %v, want %v", got, want)
	}
	if v[attackerOff] != 1 || v[defenderOff] != 0 {
		t.Fatal("player 0 attacks after this deal")
	}
	if v[trumpCardOff+35] != 1 {
		t.Fatal("trump card bit not set")
	}
	for _, id := range []int{0, 2, 4, 6, 8, 10} {
		if v[myCardsOff+id] != 1 {
			t.Fatalf("hand bit %d not set", id)
		}
	}
	// The opponent's cards never show up.
	for _, id := range []int{1, 3, 5, 7, 9, 11} {
		if v[myCardsOff+id] != 0 {
			t.Fatalf("opponent card %d leaked into the encoding", id)
		}
	}
	for i := tableAttOff; i < EncodingSize; i++ {
		if v[i] != 0 {
			t.Fatalf("empty table sets bit %d", i)
		}
	}

	w := Encode(g, 1)
	if w[0] != 0 || w[1] != 1 {
		t.Fatal("player one-hot wrong for player 1")
	}
	if w[attackerOff] != 0 || w[defenderOff] != 1 {
		t.Fatal("player 1 defends after this deal")
	}
	if w[myCardsOff+1] != 1 || w[myCardsOff+0] != 0 {
		t.Fatal("player 1's hand bits wrong")
	}
}

func TestEncodeTable(t *testing.T) {
	g := dealtGame(t, game.Classic)
	for _, a := range []game.Action{game.PlayCard(0), game.FinishAttack, game.PlayCard(1)} {
		if err := g.Apply(a); err != nil {
			t.Fatal(err)
		}
	}

	const (
		myCardsOff  = 49
		tableAttOff = 85
		tableDefOff = 121
	)
	v := Encode(g, 0)
	if v[tableAttOff+0] != 1 || v[tableDefOff+1] != 1 {
		t.Fatal("table bits not set")
	}
	if v[myCardsOff+0] != 0 {
		t.Fatal("played card still encoded in hand")
	}
}

func TestEncodeBeforeReveal(t *testing.T) {
	order := make([]int, shared.NumCards)
	for i := range order {
		order[i] = i
	}
	g, err := game.NewGame(order, game.Classic)
	if err != nil {
		t.Fatal(err)
	}

	v := Encode(g, 0)
	// No trump suit or trump card bit before the reveal.
	for i := 2; i < 6; i++ {
		if v[i] != 0 {
			t.Fatalf("trump suit bit %d set before the reveal", i)
		}
	}
	for i := 13; i < 49; i++ {
		if v[i] != 0 {
			t.Fatalf("trump card bit %d set before the reveal", i)
		}
	}
}

func TestStringViewpoint(t *testing.T) {
	g := dealtGame(t, game.Classic)
	s := String(g, 0)
	for _, want := range []string{
		"Player 0 viewpoint",
		"Phase: Attack",
		"Trump card: A♥",
		"Attacker=0, Defender=1",
		"6♠",
		"DeckRemaining: 24",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("viewpoint %q missing %q", s, want)
		}
	}
	if strings.Contains(s, "7♠") {
		t.Fatal("player 0's viewpoint shows an opponent card")
	}
}
