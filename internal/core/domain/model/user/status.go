package user

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the account lifecycle state of a user.
//
//	pending ──> active ──> inactive
//	   └───────────────────────┘
//
// Couriers start pending and move to active or inactive when the admin
// approves or rejects them. Other roles start active.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending marks a courier registration awaiting admin review.
	StatusPending

	// StatusActive marks an account allowed to act.
	StatusActive

	// StatusInactive marks a disabled or rejected account.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:  "pending",
		StatusActive:   "active",
		StatusInactive: "inactive",
	}
}

// StatusFromString parses the wire representation of an account status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
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
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
