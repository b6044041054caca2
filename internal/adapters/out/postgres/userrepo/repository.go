package userrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save inserts a new user and assigns its id, or updates an existing one.
func (r *GormUserRepository) Save(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if dto.ID != 0 {
		result := db.Model(&UserDTO{ID: dto.ID}).Select("*").Omit("id").Updates(&dto)
		if result.Error != nil {
			return nil, translateError(result.Error, dto)
		}
		if result.RowsAffected == 0 {
			return nil, errs.NewObjectNotFoundError("user", dto.ID)
		}
		return aggregate, nil
	}

	if err := db.Create(&dto).Error; err != nil {
		return nil, translateError(err, dto)
	}

	id, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return nil, err
	}
	if err = aggregate.AssignID(id); err != nil {
		return nil, err
	}
	return aggregate, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.findOne(ctx, "user", id.Value(), "id = ?", id.Value())
}

func (r *GormUserRepository) FindByLoginID(ctx context.Context, loginID string) (*user.User, error) {
	return r.findOne(ctx, "login id", loginID, "login_id = ?", loginID)
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email", email, "email = ?", email)
}

// FindAll returns every user ordered by id.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) Delete(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	id, ok := aggregate.ID()
	if !ok {
		return errs.NewValueIsRequiredError("user id")
	}
	return r.DeleteByID(ctx, id)
}

func (r *GormUserRepository) DeleteByID(ctx context.Context, id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.Value())
	}
	return nil
}

func (r *GormUserRepository) findOne(ctx context.Context, param string, value any, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}

// translateError maps unique constraint violations to ObjectAlreadyExistsError.
func translateError(err error, dto UserDTO) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("user", dto.LoginID, err)
		}
		return err
	}

	switch pgErr.ConstraintName {
	case emailConstraint:
		return errs.NewObjectAlreadyExistsErrorWithCause("email", dto.Email, err)
	case loginIDConstraint:
		return errs.NewObjectAlreadyExistsErrorWithCause("login id", dto.LoginID, err)
	default:
		return errs.NewObjectAlreadyExistsErrorWithCause("user", dto.LoginID, err)
	}
}
