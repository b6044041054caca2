package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)
)

// DeleteUserCommand removes a user by id.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UserID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(userID int64) (DeleteUserCommand, error) {
	id, err := kernel.NewUserID(userID)
	if err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		userID: id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.UserID {
	return c.userID
}
