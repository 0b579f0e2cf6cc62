package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand is a manager placing a courier on an order. Unlike
// self-acceptance, assignment may overwrite an existing courier; only
// terminal orders are off limits.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a manager assignment command.
func NewAssignOrderCommand(actorID, orderID, courierID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// ActorID returns the manager issuing the assignment.
func (c AssignOrderCommand) ActorID() kernel.UUID { return c.actorID }

// OrderID returns the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the courier being placed on the order.
func (c AssignOrderCommand) CourierID() kernel.UUID { return c.courierID }

func (c *AssignOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
