package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrChangeUserPasswordCommandIsNotConstructed = errors.New(
		"ChangeUserPasswordCommand must be created via NewChangeUserPasswordCommand constructor",
	)
)

// ChangeUserPasswordCommand sets a new password for a user.
type ChangeUserPasswordCommand struct { //nolint:recvcheck //using for validation
	requestCtx  kernel.DomainContext
	userID      kernel.UserID
	newPassword string

	guard guard.ConstructorGuard
}

func NewChangeUserPasswordCommand(
	requestCtx kernel.DomainContext,
	userID int64,
	newPassword string,
) (ChangeUserPasswordCommand, error) {
	id, idErr := kernel.NewUserID(userID)
	if err := errors.Join(
		validateRequestContext(requestCtx),
		idErr,
		requireValue("password", newPassword),
	); err != nil {
		return ChangeUserPasswordCommand{}, err
	}

	return ChangeUserPasswordCommand{
		requestCtx:  requestCtx,
		userID:      id,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserPasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserPasswordCommandIsNotConstructed)
}

func (c ChangeUserPasswordCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c ChangeUserPasswordCommand) UserID() kernel.UserID {
	return c.userID
}

func (c ChangeUserPasswordCommand) NewPassword() string {
	return c.newPassword
}
