package commands

import (
	"context"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
)

// SetAvailabilityCommandHandler lets an active courier flip their own
// availability flag.
type SetAvailabilityCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetAvailabilityCommandHandler(uowFactory UserUoWFactory) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle and returns the updated courier.
// Only the courier themselves may change the flag, and only while active.
func (h SetAvailabilityCommandHandler) Handle(
	ctx context.Context,
	command SetAvailabilityCommand,
) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	actor, err := resolveActor(ctx, repo, command.ActorID())
	if err != nil {
		return nil, err
	}

	accessGuard := services.NewAccessGuard()
	if err := accessGuard.AuthorizeSelf(actor, command.CourierID(), user.RoleCourier); err != nil {
		return nil, err
	}

	if err := actor.SetAvailability(command.Available()); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, actor); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return actor, nil
}
