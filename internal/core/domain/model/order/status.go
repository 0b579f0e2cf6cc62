package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It implements a state machine
// with a closed transition graph; arbitrary status overwrites are rejected.
//
//	pending ──> in_progress ──> delivered
//	   │             │
//	   └──> cancelled <──┘
//
// Delivered and cancelled are terminal.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial state: created, no courier assigned.
	StatusPending

	// StatusInProgress means a courier accepted or was assigned the order.
	StatusInProgress

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the aborted terminal state, reachable from pending
	// or in_progress.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the wire representation of an order status.
// Unrecognized values are rejected with a validation error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// String returns the wire representation of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the status belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
// A status can always "transition" to itself; that is the idempotent no-op
// path used by repeated status updates.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}

	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusDelivered || target == StatusCancelled
	default:
		return false
	}
}

// TransitionTo validates and performs the transition to target.
// Returns a conflict error when the graph does not allow the move.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("order cannot move from %s to %s", s, target))
	}

	return target, nil
}
