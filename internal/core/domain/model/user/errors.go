package user

import "errors"

var (
	// ErrUserIDAlreadyAssigned is returned when AssignID is called twice.
	ErrUserIDAlreadyAssigned = errors.New("user id is already assigned")

	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)
