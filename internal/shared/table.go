package shared

import "strings"

// Slot is one attack card on the table together with its covering defense
// card, or NoCard while the attack is still open.
type Slot struct {
	Attack  Card `json:"attack"`
	Defense Card `json:"defense"`
}

// Covered reports whether the attack in this slot has been answered.
func (s Slot) Covered() bool {
	return s.Defense != NoCard
}

// Table is the ordered sequence of attack slots for the current round. The
// order reflects play order; the earliest uncovered slot is the one the
// defender must answer next.
type Table struct {
	Slots []Slot `json:"slots"`
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{Slots: []Slot{}}
}

// AddAttack appends a new uncovered attack slot.
func (t *Table) AddAttack(card Card) {
	t.Slots = append(t.Slots, Slot{Attack: card, Defense: NoCard})
}

// Cover fills slot i with the given defense card.
func (t *Table) Cover(i int, card Card) {
	t.Slots[i].Defense = card
}

// EarliestUncovered returns the index of the lowest-index uncovered slot.
func (t *Table) EarliestUncovered() (int, bool) {
	for i, s := range t.Slots {
		if !s.Covered() {
			return i, true
		}
	}
	return -1, false
}

// AllCovered reports whether every slot has been answered. True for an
// empty table.
func (t *Table) AllCovered() bool {
	for _, s := range t.Slots {
		if !s.Covered() {
			return false
		}
	}
	return true
}

// AnyCovered reports whether at least one slot has been answered.
func (t *Table) AnyCovered() bool {
	for _, s := range t.Slots {
		if s.Covered() {
			return true
		}
	}
	return false
}

// Empty reports whether no attack has been played this round.
func (t *Table) Empty() bool {
	return len(t.Slots) == 0
}

// Size returns the number of attack slots.
func (t *Table) Size() int {
	return len(t.Slots)
}

// HasRank reports whether the given rank appears anywhere on the table,
// attack or defense side.
func (t *Table) HasRank(rank Rank) bool {
	for _, s := range t.Slots {
		if s.Attack.Rank() == rank {
			return true
		}
		if s.Covered() && s.Defense.Rank() == rank {
			return true
		}
	}
	return false
}

// HasAttackRank reports whether the given rank appears among the attack
// cards only.
func (t *Table) HasAttackRank(rank Rank) bool {
	for _, s := range t.Slots {
		if s.Attack.Rank() == rank {
			return true
		}
	}
	return false
}

// Cards returns every card on the table in play order, attack before its
// defense within each slot.
func (t *Table) Cards() []Card {
	out := make([]Card, 0, len(t.Slots)*2)
	for _, s := range t.Slots {
		out = append(out, s.Attack)
		if s.Covered() {
			out = append(out, s.Defense)
		}
	}
	return out
}

// Clear removes every slot from the table.
func (t *Table) Clear() {
	t.Slots = t.Slots[:0]
}

// String renders the table as "6♠->7♠  9♦->?" style pairs.
func (t *Table) String() string {
	var b strings.Builder
	for i, s := range t.Slots {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Attack.String())
		b.WriteString("->")
		if s.Covered() {
			b.WriteString(s.Defense.String())
		} else {
			b.WriteString("?")
		}
	}
	return b.String()
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	slots := make([]Slot, len(t.Slots))
	copy(slots, t.Slots)
	return &Table{Slots: slots}
}
