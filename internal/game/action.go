package game

import (
	"fmt"

	"durak-game/internal/shared"
)

// ActionType tags the kind of move submitted to the engine.
type ActionType int

const (
	// ActionNone is the zero value; no action has been taken yet.
	ActionNone ActionType = iota
	ActionPlayCard
	ActionTakeCards
	ActionFinishAttack
	ActionFinishDefense
	ActionTransfer
)

// Host-boundary action identifiers. Identifiers below shared.NumCards play
// the card with that id (and name the dealt card during the dealing phase);
// the values beyond are the sentinel moves, in this exact order.
const (
	IDTakeCards     = shared.NumCards     // 36
	IDFinishAttack  = shared.NumCards + 1 // 37
	IDFinishDefense = shared.NumCards + 2 // 38
	IDTransfer      = shared.NumCards + 3 // 39
)

// Action is one move in the game. Card is only meaningful for
// ActionPlayCard; during the dealing phase a PlayCard action names the card
// being dealt or revealed.
type Action struct {
	Type ActionType  `json:"type"`
	Card shared.Card `json:"card"`
}

// PlayCard builds the action that plays (or, during dealing, deals) the
// given card.
func PlayCard(c shared.Card) Action {
	return Action{Type: ActionPlayCard, Card: c}
}

var (
	TakeCards     = Action{Type: ActionTakeCards, Card: shared.NoCard}
	FinishAttack  = Action{Type: ActionFinishAttack, Card: shared.NoCard}
	FinishDefense = Action{Type: ActionFinishDefense, Card: shared.NoCard}
	Transfer      = Action{Type: ActionTransfer, Card: shared.NoCard}
)

// ID returns the host-boundary integer identifier for the action, or -1 for
// the zero action.
func (a Action) ID() int {
	switch a.Type {
	case ActionPlayCard:
		return int(a.Card)
	case ActionTakeCards:
		return IDTakeCards
	case ActionFinishAttack:
		return IDFinishAttack
	case ActionFinishDefense:
		return IDFinishDefense
	case ActionTransfer:
		return IDTransfer
	default:
		return -1
	}
}

// ActionFromID decodes a host-boundary action identifier.
func ActionFromID(id int) (Action, error) {
	switch {
	case id >= 0 && id < shared.NumCards:
		return PlayCard(shared.Card(id)), nil
	case id == IDTakeCards:
		return TakeCards, nil
	case id == IDFinishAttack:
		return FinishAttack, nil
	case id == IDFinishDefense:
		return FinishDefense, nil
	case id == IDTransfer:
		return Transfer, nil
	default:
		return Action{}, fmt.Errorf("unknown action id %d", id)
	}
}

// String renders the action for logs and traces.
func (a Action) String() string {
	switch a.Type {
	case ActionPlayCard:
		return "Play:" + a.Card.String()
	case ActionTakeCards:
		return "TAKE_CARDS"
	case ActionFinishAttack:
		return "FINISH_ATTACK"
	case ActionFinishDefense:
		return "FINISH_DEFENSE"
	case ActionTransfer:
		return "TRANSFER"
	default:
		return "NONE"
	}
}
