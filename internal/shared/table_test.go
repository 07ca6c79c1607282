package shared

import "testing"

func TestTableSlots(t *testing.T) {
	table := NewTable()
	if !table.Empty() || !table.AllCovered() {
		t.Fatal("fresh table must be empty and trivially all-covered")
	}

	table.AddAttack(Card(0)) // 6♠
	table.AddAttack(Card(9)) // 6♣
	if table.Size() != 2 || table.AnyCovered() {
		t.Fatalf("table = %s, want two uncovered slots", table)
	}

	idx, ok := table.EarliestUncovered()
	if !ok || idx != 0 {
		t.Fatalf("earliest uncovered = %d/%v, want 0/true", idx, ok)
	}

	table.Cover(0, Card(1)) // 7♠
	idx, ok = table.EarliestUncovered()
	if !ok || idx != 1 {
		t.Fatalf("earliest uncovered after cover = %d/%v, want 1/true", idx, ok)
	}
	if table.AllCovered() {
		t.Fatal("one slot is still open")
	}

	table.Cover(1, Card(10)) // 7♣
	if !table.AllCovered() || !table.AnyCovered() {
		t.Fatal("both slots are covered now")
	}
	if _, ok := table.EarliestUncovered(); ok {
		t.Fatal("no uncovered slot should remain")
	}
}

func TestTableRanks(t *testing.T) {
	table := NewTable()
	table.AddAttack(Card(0))  // 6♠
	table.Cover(0, Card(13))  // 10♣ (off-suit cover is the caller's problem)
	table.AddAttack(Card(20)) // 8♦

	if !table.HasRank(Six) || !table.HasRank(Ten) || !table.HasRank(Eight) {
		t.Fatalf("table ranks missing from %s", table)
	}
	if table.HasRank(Ace) {
		t.Fatal("ace is not on the table")
	}
	if !table.HasAttackRank(Six) || !table.HasAttackRank(Eight) {
		t.Fatal("attack ranks missing")
	}
	if table.HasAttackRank(Ten) {
		t.Fatal("ten only appears on the defense side")
	}
}

func TestTableCardsOrder(t *testing.T) {
	table := NewTable()
	table.AddAttack(Card(0))
	table.Cover(0, Card(1))
	table.AddAttack(Card(9))

	got := table.Cards()
	want := []Card{0, 1, 9}
	if len(got) != len(want) {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cards = %v, want %v", got, want)
		}
	}

	table.Clear()
	if !table.Empty() {
		t.Fatal("clear must remove every slot")
	}
}
