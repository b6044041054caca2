package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

// CreateUserCommandHandler registers users with a unique login id and email.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectAlreadyExistsError when the login id or the email is taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (kernel.UserID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UserID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UserID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err := ensureUnique(ctx, "login id", cmd.LoginID(), userRepo.FindByLoginID); err != nil {
		return kernel.UserID{}, err
	}
	if err := ensureUnique(ctx, "email", cmd.Email(), userRepo.FindByEmail); err != nil {
		return kernel.UserID{}, err
	}

	newUser, err := user.NewUser(cmd.RequestContext(), cmd.Name(), cmd.Email(), cmd.LoginID(), cmd.Password())
	if err != nil {
		return kernel.UserID{}, err
	}

	saved, err := userRepo.Save(ctx, newUser)
	if err != nil {
		return kernel.UserID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UserID{}, err
	}

	id, _ := saved.ID()
	return id, nil
}

// ensureUnique maps a successful lookup to ObjectAlreadyExistsError.
func ensureUnique(
	ctx context.Context,
	paramName, value string,
	find func(ctx context.Context, value string) (*user.User, error),
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError(paramName, value)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
