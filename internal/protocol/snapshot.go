// Package protocol defines the JSON wire form of a whole game for trivial
// state round-tripping: a snapshot saved with Marshal restores to an
// identical game with Unmarshal.
package protocol

import (
	"encoding/json"
	"fmt"

	"durak-game/internal/game"
	"durak-game/internal/shared"
)

// SlotSnapshot is one table slot; Defense is -1 while uncovered.
type SlotSnapshot struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// Snapshot is the JSON-serializable image of a full game.
type Snapshot struct {
	ID           string                   `json:"id"`
	Variant      string                   `json:"variant"`
	DeckOrder    []int                    `json:"deck_order"`
	DeckPos      int                      `json:"deck_pos"`
	CardsDealt   int                      `json:"cards_dealt"`
	Hands        [game.NumPlayers][]int   `json:"hands"`
	Table        []SlotSnapshot           `json:"table"`
	Discard      []int                    `json:"discard"`
	TrumpCard    int                      `json:"trump_card"` // -1 before the reveal
	Attacker     int                      `json:"attacker"`
	Defender     int                      `json:"defender"`
	Phase        int                      `json:"phase"`
	RoundStarter int                      `json:"round_starter"`
	LastAction   int                      `json:"last_action"` // host action id, -1 if none
	Over         bool                     `json:"over"`
}

// FromGame captures the full ledger of g.
func FromGame(g *game.Game) Snapshot {
	s := Snapshot{
		ID:           g.ID,
		Variant:      g.Variant.String(),
		DeckOrder:    make([]int, len(g.Deck.Cards)),
		DeckPos:      g.Deck.Pos,
		CardsDealt:   g.CardsDealt,
		Table:        make([]SlotSnapshot, 0, g.Table.Size()),
		Discard:      make([]int, 0, len(g.Discard)),
		TrumpCard:    int(g.TrumpCard),
		Attacker:     g.Attacker,
		Defender:     g.Defender,
		Phase:        int(g.Phase),
		RoundStarter: g.RoundStarter,
		LastAction:   g.LastAction.ID(),
		Over:         g.Over,
	}
	for i, c := range g.Deck.Cards {
		s.DeckOrder[i] = int(c)
	}
	for p := range g.Players {
		s.Hands[p] = make([]int, 0, g.Players[p].Size())
		for _, c := range g.Players[p].Hand {
			s.Hands[p] = append(s.Hands[p], int(c))
		}
	}
	for _, slot := range g.Table.Slots {
		s.Table = append(s.Table, SlotSnapshot{Attack: int(slot.Attack), Defense: int(slot.Defense)})
	}
	for _, c := range g.Discard {
		s.Discard = append(s.Discard, int(c))
	}
	return s
}

// Restore reconstructs the game a snapshot was taken from, validating the
// same invariants as game construction plus conservation of the dealt
// cards.
func (s Snapshot) Restore() (*game.Game, error) {
	variant, err := game.ParseVariant(s.Variant)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(s.DeckOrder, variant)
	if err != nil {
		return nil, err
	}
	if s.DeckPos < 0 || s.DeckPos > shared.NumCards {
		return nil, fmt.Errorf("deck position %d out of range", s.DeckPos)
	}
	if s.Attacker < 0 || s.Attacker >= game.NumPlayers || s.Defender != 1-s.Attacker {
		return nil, fmt.Errorf("invalid roles attacker=%d defender=%d", s.Attacker, s.Defender)
	}
	if s.Phase < int(game.PhaseChance) || s.Phase > int(game.PhaseAdditional) {
		return nil, fmt.Errorf("invalid phase %d", s.Phase)
	}

	// Every card dealt so far must appear exactly once across hands, table
	// and discard, and must come from the dealt prefix of the deck.
	dealt := map[shared.Card]bool{}
	inPrefix := map[shared.Card]bool{}
	for _, id := range s.DeckOrder[:s.DeckPos] {
		inPrefix[shared.Card(id)] = true
	}
	claim := func(id int) error {
		c := shared.Card(id)
		if !c.Valid() {
			return fmt.Errorf("card id %d out of range", id)
		}
		if dealt[c] {
			return fmt.Errorf("card %s appears twice in snapshot", c)
		}
		if !inPrefix[c] {
			return fmt.Errorf("card %s not drawn from the deck yet", c)
		}
		dealt[c] = true
		return nil
	}

	for p := range s.Hands {
		for _, id := range s.Hands[p] {
			if err := claim(id); err != nil {
				return nil, err
			}
			g.Players[p].AddCard(shared.Card(id))
		}
	}
	for _, slot := range s.Table {
		if err := claim(slot.Attack); err != nil {
			return nil, err
		}
		g.Table.AddAttack(shared.Card(slot.Attack))
		if slot.Defense != int(shared.NoCard) {
			if err := claim(slot.Defense); err != nil {
				return nil, err
			}
			g.Table.Cover(g.Table.Size()-1, shared.Card(slot.Defense))
		}
	}
	for _, id := range s.Discard {
		if err := claim(id); err != nil {
			return nil, err
		}
		g.Discard = append(g.Discard, shared.Card(id))
	}
	if len(dealt) != s.DeckPos {
		return nil, fmt.Errorf("snapshot accounts for %d dealt cards, deck position says %d", len(dealt), s.DeckPos)
	}

	g.ID = s.ID
	g.Deck.Pos = s.DeckPos
	g.CardsDealt = s.CardsDealt
	if s.TrumpCard != int(shared.NoCard) {
		c := shared.Card(s.TrumpCard)
		if !c.Valid() {
			return nil, fmt.Errorf("trump card id %d out of range", s.TrumpCard)
		}
		g.TrumpCard = c
		g.TrumpSuit = c.Suit()
	}
	g.Attacker = s.Attacker
	g.Defender = s.Defender
	g.Phase = game.Phase(s.Phase)
	g.RoundStarter = s.RoundStarter
	if s.LastAction >= 0 {
		a, err := game.ActionFromID(s.LastAction)
		if err != nil {
			return nil, err
		}
		g.LastAction = a
	}
	g.Over = s.Over
	return g, nil
}

// Marshal serializes a game to its snapshot JSON.
func Marshal(g *game.Game) ([]byte, error) {
	return json.Marshal(FromGame(g))
}

// Unmarshal restores a game from snapshot JSON.
func Unmarshal(data []byte) (*game.Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Restore()
}
