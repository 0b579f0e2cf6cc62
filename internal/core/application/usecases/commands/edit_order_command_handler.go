package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// EditOrderCommandHandler applies partial edits to an order's free-form
// fields. Only the owning customer or a manager may edit.
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory UoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the changes and returns the updated order.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) (*order.Order, error) {
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

	edited, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	accessGuard := services.NewAccessGuard()
	if err := accessGuard.AuthorizeOwnerOrManager(actor, edited.CustomerID()); err != nil {
		return nil, err
	}

	if err := edited.ApplyChanges(command.Changes()); err != nil {
		return nil, err
	}

	if err := orderRepo.Update(ctx, edited); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return edited, nil
}
