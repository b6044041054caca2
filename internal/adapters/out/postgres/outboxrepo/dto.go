// Package outboxrepo stores domain events in the outbox table until the relay
// publishes them.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// Outbox row states.
const (
	StatusPending   = "PENDING"
	StatusPublished = "PUBLISHED"
	StatusFailed    = "FAILED"
)

// OutboxEventDTO is one domain event waiting for (or done with) publication.
// The row id is the domain event id, so an event is stored at most once.
type OutboxEventDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence      int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	AggregateType string    `gorm:"type:varchar(50);not null;index:idx_outbox_aggregate"`
	AggregateID   string    `gorm:"type:varchar(50);not null;index:idx_outbox_aggregate"`
	EventName     string    `gorm:"type:varchar(100);not null"`
	Payload       string    `gorm:"type:jsonb;not null"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	RetryCount    int       `gorm:"not null;default:0"`
	OccurredOn    time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	PublishedAt   *time.Time
}

func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

// envelope is the JSON document published for every event.
type envelope struct {
	EventID       uuid.UUID            `json:"event_id"`
	EventName     string               `json:"event_name"`
	OccurredOn    time.Time            `json:"occurred_on"`
	AggregateType string               `json:"aggregate_type"`
	AggregateID   string               `json:"aggregate_id"`
	Context       kernel.DomainContext `json:"context"`
	Payload       any                  `json:"payload"`
}

// NewOutboxEvent serializes event into a pending outbox row.
func NewOutboxEvent(aggregateType, aggregateID string, event kernel.DomainEvent) (OutboxEventDTO, error) {
	payload, err := json.Marshal(envelope{
		EventID:       event.EventID(),
		EventName:     event.EventName(),
		OccurredOn:    event.OccurredOn().UTC(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Context:       event.Context(),
		Payload:       event.Payload(),
	})
	if err != nil {
		return OutboxEventDTO{}, fmt.Errorf("marshal %s event %s: %w", event.EventName(), event.EventID(), err)
	}

	return OutboxEventDTO{
		ID:            event.EventID(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventName:     event.EventName(),
		Payload:       string(payload),
		Status:        StatusPending,
		OccurredOn:    event.OccurredOn().UTC(),
	}, nil
}

func (dto OutboxEventDTO) toMessage() ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:            dto.ID,
		AggregateType: dto.AggregateType,
		AggregateID:   dto.AggregateID,
		EventName:     dto.EventName,
		Payload:       []byte(dto.Payload),
		OccurredOn:    dto.OccurredOn.UTC(),
		RetryCount:    dto.RetryCount,
	}
}
