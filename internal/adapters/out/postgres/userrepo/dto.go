// Package userrepo persists the User aggregate with GORM.
package userrepo

import (
	"ordering/internal/adapters/out/postgres/auditdto"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

const (
	emailConstraint   = "idx_users_email"
	loginIDConstraint = "idx_users_login_id"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           int64             `gorm:"primaryKey;autoIncrement"`
	Name         string            `gorm:"type:varchar(255);not null"`
	Email        string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	LoginID      string            `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_login_id"`
	PasswordHash string            `gorm:"type:varchar(100);not null"`
	Audit        auditdto.AuditDTO `gorm:"embedded"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		LoginID:      aggregate.LoginID(),
		PasswordHash: aggregate.PasswordHash(),
		Audit:        auditdto.FromDomain(aggregate.AuditInfo()),
	}
	if id, ok := aggregate.ID(); ok {
		dto.ID = id.Value()
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewUserID(dto.ID)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Name, dto.Email, dto.LoginID, dto.PasswordHash, dto.Audit.ToDomain())
}
