package service

import "skyhi-pos/internal/model"

// TransitionTable lists the fulfillment statuses reachable from each status.
// A nil table is permissive: any of the five values may be set from any other,
// which matches the observed operator behavior.
type TransitionTable map[model.OrderStatus][]model.OrderStatus

// Allowed reports whether from→to is a legal transition under the table.
func (t TransitionTable) Allowed(from, to model.OrderStatus) bool {
	if t == nil {
		return true
	}
	for _, s := range t[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StrictTransitions is the forward-only kitchen flow with cancellation
// possible until completion. completed and cancelled are terminal.
func StrictTransitions() TransitionTable {
	return TransitionTable{
		model.OrderPending:   {model.OrderPreparing, model.OrderCancelled},
		model.OrderPreparing: {model.OrderReady, model.OrderCancelled},
		model.OrderReady:     {model.OrderCompleted, model.OrderCancelled},
	}
}
