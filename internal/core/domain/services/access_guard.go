package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// AccessGuard is the domain service gating every mutation behind a principal
// check. The decision logic is the same everywhere: the actor must exist,
// must be active, and must carry the required role. How the actor was
// resolved (token, session) is the adapter's concern; the guard only judges
// the resolved principal.
//
// Example usage:
//
//	guard := services.NewAccessGuard()
//	if err := guard.Authorize(actor, user.RoleManager); err != nil {
//	    return err // not authenticated or forbidden
//	}
//	// actor is an active manager
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Authorize checks that actor is an active principal with the required role.
// A nil actor means identity resolution failed upstream and yields a
// not-authenticated error; an inactive account or role mismatch yields a
// forbidden error. The first failing check wins.
func (AccessGuard) Authorize(actor *user.User, required user.Role) error {
	if err := actor.Validate(); err != nil {
		return errs.NewNotAuthenticatedErrorWithCause("actor could not be resolved", err)
	}

	if !actor.IsActive() {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("account is %s", actor.Status()))
	}

	if actor.Role() != required {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("operation requires the %s role", required))
	}

	return nil
}

// AuthorizeActive checks only that the actor exists and is active, with no
// role requirement. Used by order creation, which any active account may do.
func (AccessGuard) AuthorizeActive(actor *user.User) error {
	if err := actor.Validate(); err != nil {
		return errs.NewNotAuthenticatedErrorWithCause("actor could not be resolved", err)
	}

	if !actor.IsActive() {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("account is %s", actor.Status()))
	}

	return nil
}

// AuthorizeSelf additionally requires the actor to be the subject of the
// operation. Used by the availability toggle, where a courier may only change
// their own flag.
func (g AccessGuard) AuthorizeSelf(actor *user.User, subjectID kernel.UUID, required user.Role) error {
	if err := actor.Validate(); err != nil {
		return errs.NewNotAuthenticatedErrorWithCause("actor could not be resolved", err)
	}

	if !actor.ID().IsEqual(subjectID) {
		return errs.NewAccessForbiddenError("actors may only operate on their own account")
	}

	return g.Authorize(actor, required)
}

// AuthorizeOwnerOrManager allows the owner of a resource, or any active
// manager, through. Used by order edits and guarded status updates.
func (g AccessGuard) AuthorizeOwnerOrManager(actor *user.User, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return errs.NewNotAuthenticatedErrorWithCause("actor could not be resolved", err)
	}

	if !actor.IsActive() {
		return errs.NewAccessForbiddenError(
			fmt.Sprintf("account is %s", actor.Status()))
	}

	if actor.ID().IsEqual(ownerID) || actor.Role() == user.RoleManager {
		return nil
	}

	return errs.NewAccessForbiddenError("operation requires the resource owner or a manager")
}

// AuthorizeOrderParticipant allows the order's owner, its assigned courier,
// or any active manager through. Used by guarded status updates, where the
// courier doing the delivery must be able to mark it delivered.
func (g AccessGuard) AuthorizeOrderParticipant(actor *user.User, ownerID kernel.UUID, courierID *kernel.UUID) error {
	if courierID != nil {
		if err := actor.Validate(); err == nil && actor.IsActive() && actor.ID().IsEqual(*courierID) {
			return nil
		}
	}

	return g.AuthorizeOwnerOrManager(actor, ownerID)
}
