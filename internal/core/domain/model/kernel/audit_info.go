package kernel

import "time"

// AuditInfo records who created and last modified an aggregate and when.
//
// AuditInfo is an immutable value object: Update returns a new value and never
// touches the creation fields.
type AuditInfo struct {
	createdAt time.Time
	createdBy string
	updatedAt time.Time
	updatedBy string
}

// NewAuditInfo stamps a freshly created aggregate. Both timestamps are equal and
// both actors are set to actor.
//
// Example:
//
//	audit := kernel.NewAuditInfo(ctx.Actor())
//	audit.CreatedAt().Equal(audit.UpdatedAt()) // true
func NewAuditInfo(actor string) AuditInfo {
	now := Now()
	return AuditInfo{
		createdAt: now,
		createdBy: actor,
		updatedAt: now,
		updatedBy: actor,
	}
}

// RestoreAuditInfo rebuilds audit information read from storage.
func RestoreAuditInfo(createdAt time.Time, createdBy string, updatedAt time.Time, updatedBy string) AuditInfo {
	return AuditInfo{
		createdAt: createdAt,
		createdBy: createdBy,
		updatedAt: updatedAt,
		updatedBy: updatedBy,
	}
}

// Update returns a copy with updatedAt refreshed to the current time and
// updatedBy set to actor.
func (a AuditInfo) Update(actor string) AuditInfo {
	a.updatedAt = Now()
	a.updatedBy = actor
	return a
}

// CreatedAt returns the creation instant.
func (a AuditInfo) CreatedAt() time.Time {
	return a.createdAt
}

// CreatedBy returns the actor that created the aggregate.
func (a AuditInfo) CreatedBy() string {
	return a.createdBy
}

// UpdatedAt returns the instant of the last modification.
func (a AuditInfo) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdatedBy returns the actor of the last modification.
func (a AuditInfo) UpdatedBy() string {
	return a.updatedBy
}
