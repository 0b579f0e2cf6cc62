package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// AcceptPending and Assign are conditional single-statement updates: the
// lifecycle preconditions are re-checked inside the UPDATE's WHERE clause so
// two concurrent callers cannot both succeed. A zero affected-row count
// surfaces as a conflict (or not-found, checked by the caller beforehand).
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AcceptPending atomically claims an order for a courier. The update only
	// matches rows that are unassigned, pending, and flagged for mobile
	// delivery; losing the race returns errs.ErrConflict.
	AcceptPending(ctx context.Context, orderID, courierID kernel.UUID) error

	// Assign atomically sets the courier on a non-terminal order, moving a
	// pending order to in_progress and leaving any other status unchanged.
	// Overwriting an existing courier is allowed. A terminal or missing order
	// returns errs.ErrConflict.
	Assign(ctx context.Context, orderID, courierID kernel.UUID) error
}
