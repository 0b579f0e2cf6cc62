package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// SetOrderStatusCommandHandler moves orders along the lifecycle graph.
// The owner, the assigned courier, and managers may change status; the
// transition rules themselves live on the order aggregate.
type SetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for status changes.
func NewSetOrderStatusCommandHandler(uowFactory UoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition and returns the updated order.
// Re-applying the current status is an idempotent no-op; an illegal move
// surfaces as a conflict error.
func (h SetOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command SetOrderStatusCommand,
) (*order.Order, error) {
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

	actor, err := resolveActor(ctx, uow.UserRepository(), command.ActorID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	moved, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	accessGuard := services.NewAccessGuard()
	if err := accessGuard.AuthorizeOrderParticipant(actor, moved.CustomerID(), moved.CourierID()); err != nil {
		return nil, err
	}

	if err := moved.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err := orderRepo.Update(ctx, moved); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return moved, nil
}
