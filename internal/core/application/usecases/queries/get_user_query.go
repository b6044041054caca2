package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// GetUserQuery reads one user profile. The password hash is never returned.
type GetUserQuery struct {
	userID kernel.UserID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID int64) (GetUserQuery, error) {
	id, err := kernel.NewUserID(userID)
	if err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UserID {
	return q.userID
}

type GetUserQueryResponse struct {
	ID        int64
	Name      string
	Email     string
	LoginID   string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}
