package game

import (
	"errors"
	"fmt"
	"strings"

	"durak-game/internal/shared"

	"github.com/google/uuid"
)

// Variant selects the rule set.
type Variant int

const (
	// Classic is plain two-player Durak.
	Classic Variant = iota
	// WithTransfers adds the transfer move ("perevodnoy"): an undefended
	// defender holding a rank matching an attack card may pass the whole
	// open attack back, swapping roles. It also caps a round at six attack
	// slots and forbids attacking an empty-handed defender.
	WithTransfers
)

// String returns the variant name used in configuration and storage.
func (v Variant) String() string {
	if v == WithTransfers {
		return "with_transfers"
	}
	return "classic"
}

// ParseVariant reads a variant name. The empty string means Classic.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return Classic, nil
	case "with_transfers", "transfers":
		return WithTransfers, nil
	default:
		return Classic, fmt.Errorf("unknown variant %q", s)
	}
}

// Phase is the round phase governing whose turn it is.
type Phase int

const (
	// PhaseChance covers the forced dealing moves and the trump reveal.
	PhaseChance Phase = iota
	// PhaseAttack grants the move to the attacker.
	PhaseAttack
	// PhaseDefense grants the move to the defender.
	PhaseDefense
	// PhaseAdditional means all current attacks are covered; the attacker
	// may add more or stop.
	PhaseAdditional
)

var phaseNames = [...]string{"Chance", "Attack", "Defense", "Additional"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

const (
	NumPlayers     = 2
	CardsPerPlayer = 6
)

// Sentinel values returned by CurrentPlayer when no player is to move.
const (
	ChancePlayer   = -1
	TerminalPlayer = -2
)

var (
	// ErrIllegalMove is returned when a submitted action is not in the
	// current legal set; the state is left unchanged.
	ErrIllegalMove = errors.New("illegal move")
	// ErrUndoUnsupported is returned by Undo; the engine never rewinds.
	ErrUndoUnsupported = errors.New("undo is not supported")
)

// Game is the full mutable ledger plus the phase state machine for one deal
// of two-player Durak. It is single-threaded: callers apply one move at a
// time and must Clone before exploring branches in parallel.
type Game struct {
	ID      string  `json:"id"`
	Variant Variant `json:"variant"`

	Deck    *shared.Deck               `json:"deck"`
	Players [NumPlayers]*shared.Player `json:"players"`
	Table   *shared.Table              `json:"table"`
	Discard []shared.Card              `json:"discard"`

	TrumpSuit shared.Suit `json:"trump_suit"` // SuitNone until revealed
	TrumpCard shared.Card `json:"trump_card"` // NoCard until revealed

	CardsDealt   int   `json:"cards_dealt"`
	Attacker     int   `json:"attacker"`
	Defender     int   `json:"defender"`
	Phase        Phase `json:"phase"`
	RoundStarter int   `json:"round_starter"`

	// LastAction gates the finish-attack move right after a transfer.
	LastAction Action `json:"last_action"`

	Over bool `json:"over"`
}

// NewGame creates a game from an externally produced deck ordering: exactly
// 36 distinct card identifiers in [0,36). No other configuration affects the
// rules. The game starts in the dealing phase with empty hands.
func NewGame(order []int, variant Variant) (*Game, error) {
	deck, err := shared.NewDeck(order)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:        uuid.New().String(),
		Variant:   variant,
		Deck:      deck,
		Table:     shared.NewTable(),
		Discard:   []shared.Card{},
		TrumpSuit: shared.SuitNone,
		TrumpCard: shared.NoCard,
		Attacker:  0,
		Defender:  1,
		Phase:     PhaseChance,
	}
	for p := range g.Players {
		g.Players[p] = shared.NewPlayer()
	}
	return g, nil
}

// CurrentPlayer returns the player to move, or ChancePlayer during dealing
// and TerminalPlayer once the game is over. Attack and Additional grant the
// move to the attacker, Defense to the defender.
func (g *Game) CurrentPlayer() int {
	if g.Over {
		return TerminalPlayer
	}
	switch g.Phase {
	case PhaseChance:
		return ChancePlayer
	case PhaseDefense:
		return g.Defender
	default:
		return g.Attacker
	}
}

// IsChanceNode reports whether the next move is a forced dealing outcome.
func (g *Game) IsChanceNode() bool {
	return !g.Over && g.Phase == PhaseChance
}

// IsTerminal reports whether the game is over.
func (g *Game) IsTerminal() bool {
	return g.Over
}

// ChanceOutcome pairs a forced dealing action with its probability. The
// dealing sequencer is deterministic, so the probability is always 1; all
// randomness lives in how the deck ordering was produced.
type ChanceOutcome struct {
	Action Action
	Prob   float64
}

// ChanceOutcomes returns the forced outcome of the current chance node:
// while fewer than 12 cards are dealt, the next card at the deck cursor;
// afterwards, the bottom card revealed as trump.
func (g *Game) ChanceOutcomes() []ChanceOutcome {
	if !g.IsChanceNode() {
		return nil
	}
	if g.CardsDealt < CardsPerPlayer*NumPlayers {
		next, _ := g.Deck.Peek()
		return []ChanceOutcome{{Action: PlayCard(next), Prob: 1.0}}
	}
	if g.TrumpCard == shared.NoCard {
		return []ChanceOutcome{{Action: PlayCard(g.Deck.Bottom()), Prob: 1.0}}
	}
	return nil
}

// Apply validates the action against the legal set and applies it,
// mutating the game in place. An action outside the legal set returns
// ErrIllegalMove and leaves the state untouched.
func (g *Game) Apply(a Action) error {
	legal := false
	for _, la := range g.LegalActions() {
		if la == a {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s (phase %s, player %d)", ErrIllegalMove, a, g.Phase, g.CurrentPlayer())
	}

	if g.Phase == PhaseChance {
		g.applyChance()
	} else {
		switch a.Type {
		case ActionPlayCard:
			if g.Phase == PhaseDefense {
				g.playDefenseCard(a.Card)
			} else {
				g.playAttackCard(a.Card)
			}
		case ActionTakeCards:
			g.defenderTakesCards()
		case ActionFinishAttack:
			g.attackerFinishesAttack()
		case ActionFinishDefense:
			g.defenderFinishesDefense()
		case ActionTransfer:
			g.defenderTransfers()
		}
	}
	g.LastAction = a
	g.checkGameOver()
	return nil
}

// ApplyID decodes a host-boundary action identifier and applies it.
func (g *Game) ApplyID(id int) error {
	a, err := ActionFromID(id)
	if err != nil {
		return err
	}
	return g.Apply(a)
}

// Undo is not supported by this rules engine.
func (g *Game) Undo() error {
	return ErrUndoUnsupported
}

// applyChance consumes the forced dealing outcome: one card to the next
// player in strict alternation, or the trump reveal once both hands hold
// six cards.
func (g *Game) applyChance() {
	if g.CardsDealt < CardsPerPlayer*NumPlayers {
		card, _ := g.Deck.Draw()
		g.Players[g.CardsDealt%NumPlayers].AddCard(card)
		g.CardsDealt++
		return
	}
	// Reveal the bottom card as trump; the cursor does not move, the trump
	// card is drawn last during refills.
	g.TrumpCard = g.Deck.Bottom()
	g.TrumpSuit = g.TrumpCard.Suit()
	g.decideFirstAttacker()
	g.Phase = PhaseAttack
	g.RoundStarter = g.Attacker
}

// decideFirstAttacker gives the first attack to the player holding the
// lowest trump; player 0 if neither holds one.
func (g *Game) decideFirstAttacker() {
	lowest := shared.NoCard
	who := 0
	for p := range g.Players {
		if c, ok := g.Players[p].LowestTrump(g.TrumpSuit); ok {
			if lowest == shared.NoCard || c.Rank() < lowest.Rank() {
				lowest = c
				who = p
			}
		}
	}
	g.Attacker = who
	g.Defender = 1 - who
}

// playAttackCard moves a card from the attacker's hand onto a new uncovered
// slot.
func (g *Game) playAttackCard(card shared.Card) {
	g.Players[g.Attacker].RemoveCard(card)
	g.Table.AddAttack(card)
	g.Phase = PhaseAttack
}

// playDefenseCard covers the earliest uncovered slot. Once every slot is
// covered the attacker may add more cards or stop.
func (g *Game) playDefenseCard(card shared.Card) {
	idx, ok := g.Table.EarliestUncovered()
	if !ok {
		return
	}
	g.Players[g.Defender].RemoveCard(card)
	g.Table.Cover(idx, card)
	if g.Table.AllCovered() {
		g.Phase = PhaseAdditional
	}
}

// defenderTakesCards moves every table card into the defender's hand. Roles
// do not change; the failed defender stays defender.
func (g *Game) defenderTakesCards() {
	for _, c := range g.Table.Cards() {
		g.Players[g.Defender].AddCard(c)
	}
	g.Table.Clear()
	g.Phase = PhaseAttack
	g.refillHands()
}

// attackerFinishesAttack passes the move to the defender. A finish on an
// empty table is a no-op.
func (g *Game) attackerFinishesAttack() {
	if g.Table.Empty() {
		return
	}
	g.Phase = PhaseDefense
}

// defenderFinishesDefense ends the round. With any slot still uncovered it
// falls back to taking the cards; otherwise the table goes to the discard,
// roles swap and hands refill.
func (g *Game) defenderFinishesDefense() {
	if !g.Table.AllCovered() {
		g.defenderTakesCards()
		return
	}
	g.Discard = append(g.Discard, g.Table.Cards()...)
	g.Table.Clear()
	g.Attacker, g.Defender = g.Defender, g.Attacker
	g.refillHands()
	g.Phase = PhaseAttack
}

// defenderTransfers swaps roles without clearing the table: the inherited
// slots become the new attacker's open attacks. Only legal in the transfer
// variant while no slot is covered.
func (g *Game) defenderTransfers() {
	g.Attacker, g.Defender = g.Defender, g.Attacker
	g.Phase = PhaseAdditional
}

// refillHands tops both hands back up to six, one card at a time, attacker
// first in every cycle. The attacker-first order can leave the defender
// permanently short when the deck runs out mid-cycle; that asymmetry is
// part of the rules.
func (g *Game) refillHands() {
	order := [NumPlayers]int{g.Attacker, g.Defender}
	for !g.Deck.Exhausted() {
		for _, p := range order {
			if g.Players[p].Size() < CardsPerPlayer {
				if c, ok := g.Deck.Draw(); ok {
					g.Players[p].AddCard(c)
				}
			}
		}
		full := true
		for _, p := range order {
			if g.Players[p].Size() < CardsPerPlayer {
				full = false
			}
		}
		if full {
			break
		}
	}
}

// checkGameOver runs after every transition. The game ends when the deck is
// exhausted and at least one hand is empty. Both hands empty with cards
// still in the deck signals a missed refill, which is performed here
// instead of terminating.
func (g *Game) checkGameOver() {
	p0Empty := g.Players[0].Size() == 0
	p1Empty := g.Players[1].Size() == 0

	if (p0Empty || p1Empty) && g.Deck.Exhausted() {
		g.Over = true
		return
	}
	if p0Empty && p1Empty {
		g.refillHands()
	}
}

// Returns computes the zero-sum result. Exactly one player still holding
// cards loses; if both hands emptied exactly as the deck ran out, the
// current attacker is awarded the win. Non-terminal states report 0, 0.
func (g *Game) Returns() [NumPlayers]float64 {
	var res [NumPlayers]float64
	if !g.Over {
		return res
	}

	holding := make([]int, 0, NumPlayers)
	for p := range g.Players {
		if g.Players[p].Size() > 0 {
			holding = append(holding, p)
		}
	}

	switch len(holding) {
	case 1:
		loser := holding[0]
		res[loser] = -1.0
		res[1-loser] = 1.0
	case 0:
		if g.Deck.Exhausted() {
			res[g.Attacker] = 1.0
			res[g.Defender] = -1.0
		}
	}
	return res
}

// Clone returns a deep copy sharing no mutable state with the original, for
// callers exploring game trees.
func (g *Game) Clone() *Game {
	c := &Game{
		ID:           g.ID,
		Variant:      g.Variant,
		Deck:         g.Deck.Clone(),
		Table:        g.Table.Clone(),
		Discard:      append([]shared.Card{}, g.Discard...),
		TrumpSuit:    g.TrumpSuit,
		TrumpCard:    g.TrumpCard,
		CardsDealt:   g.CardsDealt,
		Attacker:     g.Attacker,
		Defender:     g.Defender,
		Phase:        g.Phase,
		RoundStarter: g.RoundStarter,
		LastAction:   g.LastAction,
		Over:         g.Over,
	}
	for p := range g.Players {
		c.Players[p] = g.Players[p].Clone()
	}
	return c
}

// String renders the whole ledger for debugging and logs.
func (g *Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Phase=%s Attacker=%d Defender=%d Deck=%d/%d Trump=%s Over=%v\n",
		g.Phase, g.Attacker, g.Defender, g.Deck.Pos, len(g.Deck.Cards), g.TrumpCard, g.Over)
	for p := range g.Players {
		fmt.Fprintf(&b, "Player %d hand:", p)
		for _, c := range g.Players[p].Sorted() {
			b.WriteString(" ")
			b.WriteString(c.String())
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Table: %s\n", g.Table)
	fmt.Fprintf(&b, "Discard: %d cards\n", len(g.Discard))
	return b.String()
}
