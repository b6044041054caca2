package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand registers a new user. The password travels in clear text
// only up to the aggregate, which stores its hash.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	name       string
	email      string
	loginID    string
	password   string

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	requestCtx kernel.DomainContext,
	name, email, loginID, password string,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		requireValue("name", name),
		requireValue("email", email),
		requireValue("login id", loginID),
		requireValue("password", password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.loginID = loginID
	cmd.password = password
	return cmd, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c CreateUserCommand) Name() string {
	return c.name
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c CreateUserCommand) LoginID() string {
	return c.loginID
}

func (c CreateUserCommand) Password() string {
	return c.password
}

func (c *CreateUserCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func requireValue(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
