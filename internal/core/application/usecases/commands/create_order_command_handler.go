package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CreateOrderCommandHandler registers new delivery orders. Any active
// account may create orders; the actor becomes the immutable owner.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
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
	if err := accessGuard.AuthorizeActive(actor); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		actor.ID(),
		command.Code(),
		command.ObjectType(),
		command.Company(),
		command.Address(),
		command.Notes(),
		command.MobileDelivery(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
