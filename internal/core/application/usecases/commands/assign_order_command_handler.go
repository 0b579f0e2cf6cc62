package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// AssignOrderCommandHandler processes manager assignments. The target must
// be an actual courier account; the order must not be terminal. The
// repository applies the assignment as a conditional update so a concurrent
// completion or cancellation cannot be overwritten.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for manager assignments.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the courier on the order and returns the updated order.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (*order.Order, error) {
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

	userRepo := uow.UserRepository()

	actor, err := resolveActor(ctx, userRepo, command.ActorID())
	if err != nil {
		return nil, err
	}

	accessGuard := services.NewAccessGuard()
	if err := accessGuard.Authorize(actor, user.RoleManager); err != nil {
		return nil, err
	}

	courier, err := userRepo.Get(ctx, command.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundErrorWithCause("courier", command.CourierID(), err)
	}
	if err != nil {
		return nil, err
	}
	if courier.Role() != user.RoleCourier {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier id",
			errors.New("account is not a courier"))
	}

	orderRepo := uow.OrderRepository()

	assigned, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err := assigned.AssignTo(courier.ID()); err != nil {
		return nil, err
	}

	if err := orderRepo.Assign(ctx, command.OrderID(), courier.ID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}
