package service

import (
	"testing"

	"skyhi-pos/internal/model"
)

func TestTransitionTableAllowed(t *testing.T) {
	strict := StrictTransitions()

	tests := []struct {
		name  string
		table TransitionTable
		from  model.OrderStatus
		to    model.OrderStatus
		want  bool
	}{
		{"permissive accepts backwards move", nil, model.OrderCompleted, model.OrderPending, true},
		{"permissive accepts any cancel", nil, model.OrderReady, model.OrderCancelled, true},
		{"strict forward step", strict, model.OrderPending, model.OrderPreparing, true},
		{"strict cancel while preparing", strict, model.OrderPreparing, model.OrderCancelled, true},
		{"strict completes from ready", strict, model.OrderReady, model.OrderCompleted, true},
		{"strict rejects skip", strict, model.OrderPending, model.OrderReady, false},
		{"strict rejects backwards move", strict, model.OrderCompleted, model.OrderPending, false},
		{"strict completed is terminal", strict, model.OrderCompleted, model.OrderCancelled, false},
		{"strict cancelled is terminal", strict, model.OrderCancelled, model.OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.Allowed(tt.from, tt.to); got != tt.want {
				t.Errorf("Allowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
