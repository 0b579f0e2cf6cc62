package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler creates customer, manager, and admin accounts.
// Hashes the password with bcrypt before anything touches the database and
// relies on the unique email constraint to surface duplicates as conflicts.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the created user.
// A duplicate email surfaces from the repository as errs.ErrConflict.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created, err := user.NewUser(
		kernel.NewUUID(),
		command.Login(),
		command.Email(),
		command.Phone(),
		string(hash),
		command.Role(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
