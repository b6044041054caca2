package outboxrepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddEvents appends pending rows in the order given. Rows whose event id is
// already stored are skipped.
func (r *GormOutboxRepository) AddEvents(ctx context.Context, events []OutboxEventDTO) error {
	if len(events) == 0 {
		return nil
	}
	now := kernel.Now()
	for i := range events {
		events[i].CreatedAt = now
		events[i].UpdatedAt = now
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&events).Error
}

// GetPending locks up to limit pending rows in emission order. Rows locked by
// another relay are skipped, so concurrent relays never publish the same row.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ?", StatusPending).
		Order("sequence").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, dto.toMessage())
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	now := kernel.Now()
	return r.update(ctx, id, map[string]any{
		"status":       StatusPublished,
		"published_at": now,
		"updated_at":   now,
	})
}

// MarkFailed counts a failed attempt. The row stays pending until the count
// reaches maxRetries, then it is parked as FAILED.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, maxRetries int) error {
	return r.update(ctx, id, map[string]any{
		"retry_count": gorm.Expr("retry_count + 1"),
		"status": gorm.Expr(
			"CASE WHEN retry_count + 1 >= ? THEN ? ELSE status END",
			maxRetries, StatusFailed,
		),
		"updated_at": kernel.Now(),
	})
}

func (r *GormOutboxRepository) update(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxEventDTO{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox event", id)
	}
	return nil
}
