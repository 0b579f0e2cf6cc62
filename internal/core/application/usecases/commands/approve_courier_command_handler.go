package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ApproveCourierCommandHandler applies admin decisions on courier
// registrations. Only admins may decide; deciding on a non-courier account is
// treated the same as an unknown ID.
type ApproveCourierCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewApproveCourierCommandHandler creates a handler for approval decisions.
func NewApproveCourierCommandHandler(uowFactory UserUoWFactory) ApproveCourierCommandHandler {
	return ApproveCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision and returns the updated courier.
// Re-deciding is allowed: an admin can reverse an earlier approval or
// rejection, and the courier's status follows the latest decision.
func (h ApproveCourierCommandHandler) Handle(
	ctx context.Context,
	command ApproveCourierCommand,
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
	if err := accessGuard.Authorize(actor, user.RoleAdmin); err != nil {
		return nil, err
	}

	subject, err := repo.Get(ctx, command.CourierID())
	if err != nil {
		return nil, err
	}
	if subject.Role() != user.RoleCourier {
		return nil, errs.NewObjectNotFoundErrorWithCause("courier", command.CourierID(),
			errors.New("account exists but is not a courier"))
	}

	if err := subject.Approve(command.Approved()); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, subject); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return subject, nil
}
