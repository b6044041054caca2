// Package auditdto maps kernel.AuditInfo to the audit columns shared by every
// aggregate table.
package auditdto

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// AuditDTO is embedded into aggregate DTOs. Automatic time tracking is disabled:
// the domain owns these values.
type AuditDTO struct {
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
	UpdatedBy string    `gorm:"column:updated_by;type:varchar(255);not null"`
}

// FromDomain copies audit information into its column representation.
func FromDomain(info kernel.AuditInfo) AuditDTO {
	return AuditDTO{
		CreatedAt: info.CreatedAt(),
		CreatedBy: info.CreatedBy(),
		UpdatedAt: info.UpdatedAt(),
		UpdatedBy: info.UpdatedBy(),
	}
}

// ToDomain rebuilds audit information, normalizing timestamps to UTC.
func (dto AuditDTO) ToDomain() kernel.AuditInfo {
	return kernel.RestoreAuditInfo(dto.CreatedAt.UTC(), dto.CreatedBy, dto.UpdatedAt.UTC(), dto.UpdatedBy)
}
