package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Save inserts or updates the user. Duplicate login ids or emails fail with
	// errs.ObjectAlreadyExistsError.
	Save(ctx context.Context, aggregate *user.User) (*user.User, error)

	// FindByID returns errs.ObjectNotFoundError when absent.
	FindByID(ctx context.Context, id kernel.UserID) (*user.User, error)

	FindByLoginID(ctx context.Context, loginID string) (*user.User, error)

	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindAll returns users ordered by id.
	FindAll(ctx context.Context) ([]*user.User, error)

	Delete(ctx context.Context, aggregate *user.User) error

	// DeleteByID returns errs.ObjectNotFoundError when no row was removed.
	DeleteByID(ctx context.Context, id kernel.UserID) error
}
