package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand is a partial update of an order's free-form fields.
// Ownership, courier, and status never change through this path.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID
	changes order.FieldChanges

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates an edit command. At least one field must be
// supplied.
func NewEditOrderCommand(actorID, orderID kernel.UUID, changes order.FieldChanges) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if changes.IsEmpty() {
		return EditOrderCommand{}, order.ErrNoFieldsToUpdate
	}
	cmd.changes = changes

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// ActorID returns the authenticated principal issuing the edit.
func (c EditOrderCommand) ActorID() kernel.UUID { return c.actorID }

// OrderID returns the order being edited.
func (c EditOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Changes returns the partial field update.
func (c EditOrderCommand) Changes() order.FieldChanges { return c.changes }

func (c *EditOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
