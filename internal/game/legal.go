package game

import (
	"sort"

	"durak-game/internal/shared"
)

// LegalActions returns the exact legal action set for the player to move,
// or the single forced outcome during dealing. Empty once the game is over.
func (g *Game) LegalActions() []Action {
	if g.Over {
		return nil
	}
	if g.Phase == PhaseChance {
		outcomes := g.ChanceOutcomes()
		moves := make([]Action, 0, len(outcomes))
		for _, o := range outcomes {
			moves = append(moves, o.Action)
		}
		return moves
	}
	return g.LegalActionsFor(g.CurrentPlayer())
}

// LegalActionsFor returns the legal actions for the given player; nil when
// it is not that player's turn (including during dealing).
func (g *Game) LegalActionsFor(player int) []Action {
	if g.Over || g.Phase == PhaseChance || player != g.CurrentPlayer() {
		return nil
	}

	var moves []Action
	if g.Phase == PhaseDefense {
		moves = g.defenderActions(player)
	} else {
		moves = g.attackerActions(player)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].ID() < moves[j].ID() })
	return moves
}

// attackerActions enumerates the attacker's moves in the Attack and
// Additional phases.
func (g *Game) attackerActions(player int) []Action {
	var moves []Action
	hand := g.Players[player].Hand

	if g.Table.Empty() {
		// Opening attack: any card.
		for _, c := range hand {
			moves = append(moves, PlayCard(c))
		}
	} else if g.canAddAttack() {
		// Further attacks must match a rank already on the table.
		for _, c := range hand {
			if g.Table.HasRank(c.Rank()) {
				moves = append(moves, PlayCard(c))
			}
		}
	}

	// The attacker may stop once something is on the table, except right
	// after a transfer: the new attacker must act at least once first.
	if !g.Table.Empty() && g.LastAction.Type != ActionTransfer {
		moves = append(moves, FinishAttack)
	}
	return moves
}

// canAddAttack applies the transfer-variant caps on piling further attacks
// onto a non-empty table.
func (g *Game) canAddAttack() bool {
	if g.Variant != WithTransfers {
		return true
	}
	return g.Table.Size() < CardsPerPlayer && g.Players[g.Defender].Size() > 0
}

// defenderActions enumerates the defender's moves in the Defense phase.
func (g *Game) defenderActions(player int) []Action {
	var moves []Action
	hand := g.Players[player].Hand

	idx, uncovered := g.Table.EarliestUncovered()
	if !uncovered {
		return append(moves, FinishDefense)
	}

	moves = append(moves, TakeCards)

	// Transfer: only while nothing has been covered yet, and only with a
	// card matching some attacking rank in hand.
	if g.Variant == WithTransfers && !g.Table.AnyCovered() {
		for _, c := range hand {
			if g.Table.HasAttackRank(c.Rank()) {
				moves = append(moves, Transfer)
				break
			}
		}
	}

	attack := g.Table.Slots[idx].Attack
	for _, c := range hand {
		if shared.CanDefend(c, attack, g.TrumpSuit) {
			moves = append(moves, PlayCard(c))
		}
	}
	return moves
}
