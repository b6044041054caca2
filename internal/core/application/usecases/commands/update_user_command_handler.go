package commands

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
)

// UpdateUserCommandHandler updates user profiles. The new email must not belong
// to another user.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.FindByID(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	owner, err := userRepo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if ownerID, _ := owner.ID(); !ownerID.IsEqual(cmd.UserID()) {
			return errs.NewObjectAlreadyExistsError("email", cmd.Email())
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = u.Update(cmd.RequestContext(), cmd.Name(), cmd.Email()); err != nil {
		return err
	}

	if _, err = userRepo.Save(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
