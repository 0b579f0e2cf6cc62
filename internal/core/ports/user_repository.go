// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the document store.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as a conflict
	// error (errs.ErrConflict), mapped from the unique constraint.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by ID. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmailAndRole retrieves a user by the unique email, further
	// restricted to the given role. Used by the per-role login paths.
	GetByEmailAndRole(ctx context.Context, email string, role user.Role) (*user.User, error)

	// ExistsByEmail reports whether any user holds the email. Courier
	// registration checks this before uploading documents so a duplicate
	// never leaves orphaned objects in the store.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
