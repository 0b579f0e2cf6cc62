package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
)

// AcceptOrderCommandHandler processes courier self-acceptance. The domain
// checks run first so each precondition failure carries a precise conflict
// message; the repository then re-checks them inside a single conditional
// update, which is what actually decides a race between two couriers.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order self-acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the order for the acting courier and returns the updated
// order. A lost race surfaces as a conflict error.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (*order.Order, error) {
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

	accessGuard := services.NewAccessGuard()
	if err := accessGuard.Authorize(actor, user.RoleCourier); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	claimed, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err := claimed.Accept(actor.ID()); err != nil {
		return nil, err
	}

	if err := orderRepo.AcceptPending(ctx, command.OrderID(), actor.ID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
