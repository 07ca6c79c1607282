package game

import (
	"errors"
	"testing"

	"durak-game/internal/shared"
)

func TestActionIDs(t *testing.T) {
	cases := []struct {
		action Action
		id     int
		str    string
	}{
		{PlayCard(0), 0, "Play:6♠"},
		{PlayCard(35), 35, "Play:A♥"},
		{TakeCards, IDTakeCards, "TAKE_CARDS"},
		{FinishAttack, IDFinishAttack, "FINISH_ATTACK"},
		{FinishDefense, IDFinishDefense, "FINISH_DEFENSE"},
		{Transfer, IDTransfer, "TRANSFER"},
	}
	for _, tc := range cases {
		if got := tc.action.ID(); got != tc.id {
			t.Errorf("%s: id = %d, want %d", tc.str, got, tc.id)
		}
		if got := tc.action.String(); got != tc.str {
			t.Errorf("id %d: string = %q, want %q", tc.id, got, tc.str)
		}
		back, err := ActionFromID(tc.id)
		if err != nil || back != tc.action {
			t.Errorf("ActionFromID(%d) = %v, %v", tc.id, back, err)
		}
	}

	for _, id := range []int{-1, 40, 100} {
		if _, err := ActionFromID(id); err == nil {
			t.Errorf("ActionFromID(%d) accepted", id)
		}
	}

	var zero Action
	if zero.Type != ActionNone || zero.ID() != -1 {
		t.Fatalf("zero action = %v, id %d", zero, zero.ID())
	}
}

func TestApplyID(t *testing.T) {
	g, err := NewGame(sequentialOrder(), Classic)
	if err != nil {
		t.Fatal(err)
	}
	// The first forced deal is card 0.
	if err := g.ApplyID(0); err != nil {
		t.Fatalf("ApplyID(0): %v", err)
	}
	if !g.Players[0].HasCard(shared.Card(0)) {
		t.Fatal("card 0 must land in player 0's hand")
	}
	if err := g.ApplyID(99); err == nil {
		t.Fatal("out-of-range id accepted")
	}
}

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in   string
		want Variant
	}{
		{"", Classic},
		{"classic", Classic},
		{"with_transfers", WithTransfers},
	}
	for _, tc := range cases {
		got, err := ParseVariant(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseVariant(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := ParseVariant("podkidnoy"); err == nil {
		t.Fatal("unknown variant accepted")
	}
}

func TestIllegalMoveErrorText(t *testing.T) {
	g := newDealtGame(t, sequentialOrder(), Classic)
	err := g.Apply(TakeCards)
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("got %v", err)
	}
	if err.Error() == "" {
		t.Fatal("error must describe the rejected move")
	}
}
