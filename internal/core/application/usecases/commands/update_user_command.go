package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// UpdateUserCommand changes the name and email of a user.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	userID     kernel.UserID
	name       string
	email      string

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(
	requestCtx kernel.DomainContext,
	userID int64,
	name, email string,
) (UpdateUserCommand, error) {
	id, idErr := kernel.NewUserID(userID)
	if err := errors.Join(
		validateRequestContext(requestCtx),
		idErr,
		requireValue("name", name),
		requireValue("email", email),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		requestCtx: requestCtx,
		userID:     id,
		name:       name,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c UpdateUserCommand) UserID() kernel.UserID {
	return c.userID
}

func (c UpdateUserCommand) Name() string {
	return c.name
}

func (c UpdateUserCommand) Email() string {
	return c.email
}
