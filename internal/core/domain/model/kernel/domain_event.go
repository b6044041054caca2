package kernel

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable record of something that happened inside an
// aggregate, queued until a unit of work hands it to a publisher.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredOn() time.Time
	Context() DomainContext
	Payload() any
}

// BaseEvent holds the metadata shared by all domain events. Concrete events embed
// it and add their payload.
type BaseEvent struct {
	id         uuid.UUID
	name       string
	occurredOn time.Time
	context    DomainContext
}

// NewBaseEvent stamps a new event with a random id and the current time.
func NewBaseEvent(name string, ctx DomainContext) BaseEvent {
	return BaseEvent{
		id:         uuid.New(),
		name:       name,
		occurredOn: Now(),
		context:    ctx,
	}
}

// EventID returns the unique identifier of the event.
func (e BaseEvent) EventID() uuid.UUID {
	return e.id
}

// EventName returns the event type name, e.g. "OrderPaid".
func (e BaseEvent) EventName() string {
	return e.name
}

// OccurredOn returns the emission instant.
func (e BaseEvent) OccurredOn() time.Time {
	return e.occurredOn
}

// Context returns the request context the event was emitted under.
func (e BaseEvent) Context() DomainContext {
	return e.context
}

// EventRecorder is implemented by aggregates that record domain events until a
// unit of work drains them.
type EventRecorder interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
