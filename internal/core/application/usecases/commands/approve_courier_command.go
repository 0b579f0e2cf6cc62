package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrApproveCourierCommandIsNotConstructed = errors.New(
	"ApproveCourierCommand must be created via NewApproveCourierCommand constructor",
)

// ApproveCourierCommand records an admin's decision on a courier
// registration. Approval activates the account; rejection deactivates it.
// The optional reason is only logged, never stored.
type ApproveCourierCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	courierID kernel.UUID
	approved  bool
	reason    string

	guard guard.ConstructorGuard
}

// NewApproveCourierCommand creates an approval decision command.
func NewApproveCourierCommand(
	actorID, courierID kernel.UUID,
	approved bool,
	reason string,
) (ApproveCourierCommand, error) {
	cmd := ApproveCourierCommand{
		approved: approved,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ApproveCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCourierCommand) Validate() error {
	return c.guard.Validate(ErrApproveCourierCommandIsNotConstructed)
}

// ActorID returns the authenticated principal issuing the command.
func (c ApproveCourierCommand) ActorID() kernel.UUID { return c.actorID }

// CourierID returns the courier under review.
func (c ApproveCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Approved returns the decision.
func (c ApproveCourierCommand) Approved() bool { return c.approved }

// Reason returns the optional decision note.
func (c ApproveCourierCommand) Reason() string { return c.reason }

func (c *ApproveCourierCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *ApproveCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
