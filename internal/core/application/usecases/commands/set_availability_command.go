package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand toggles a courier's availability flag. The actor
// must be the courier themselves; the flag only affects listings, never the
// status of already assigned orders.
type SetAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	courierID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetAvailabilityCommand creates an availability toggle command.
func NewSetAvailabilityCommand(actorID, courierID kernel.UUID, available bool) (SetAvailabilityCommand, error) {
	cmd := SetAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setCourierID(courierID),
	); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

// ActorID returns the authenticated principal issuing the command.
func (c SetAvailabilityCommand) ActorID() kernel.UUID { return c.actorID }

// CourierID returns the courier whose flag is being set.
func (c SetAvailabilityCommand) CourierID() kernel.UUID { return c.courierID }

// Available returns the requested availability value.
func (c SetAvailabilityCommand) Available() bool { return c.available }

func (c *SetAvailabilityCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SetAvailabilityCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
