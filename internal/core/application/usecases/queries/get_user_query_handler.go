package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns the user profile or errs.ObjectNotFoundError.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	id := query.UserID().Value()

	var response GetUserQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			login_id,
			created_at,
			created_by,
			updated_at,
			updated_by
		FROM users
		WHERE id = ?
	`, id).Row().Scan(
		&response.ID,
		&response.Name,
		&response.Email,
		&response.LoginID,
		&response.CreatedAt,
		&response.CreatedBy,
		&response.UpdatedAt,
		&response.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserQueryResponse{}, errs.NewObjectNotFoundError("user", id)
		}
		return GetUserQueryResponse{}, err
	}

	response.CreatedAt = response.CreatedAt.UTC()
	response.UpdatedAt = response.UpdatedAt.UTC()
	return response, nil
}
