package user

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role is the closed set of principal kinds recognized by the system.
// Role values are validated at every boundary; unrecognized strings are
// rejected with a validation error instead of being stored as-is.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders.
	RoleCustomer

	// RoleCourier delivers orders and is subject to the approval workflow.
	RoleCourier

	// RoleAdmin approves or rejects courier registrations.
	RoleAdmin

	// RoleManager assigns couriers to orders.
	RoleManager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleCourier:  "courier",
		RoleAdmin:    "admin",
		RoleManager:  "manager",
	}
}

// RoleFromString parses the wire representation of a role.
// Returns a validation error for anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role, or "unknown".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
