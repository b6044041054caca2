package commands

import (
	"context"
)

type ChangeUserPasswordCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeUserPasswordCommandHandler(uowFactory UserUoWFactory) ChangeUserPasswordCommandHandler {
	return ChangeUserPasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeUserPasswordCommandHandler) Handle(ctx context.Context, cmd ChangeUserPasswordCommand) error {
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

	if err = u.ChangePassword(cmd.RequestContext(), cmd.NewPassword()); err != nil {
		return err
	}

	if _, err = userRepo.Save(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
