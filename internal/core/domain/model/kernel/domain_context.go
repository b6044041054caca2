package kernel

import (
	"time"

	"github.com/google/uuid"
)

// DomainContext carries request metadata into aggregate operations. Aggregates
// only read the actor from it; the rest travels untouched on emitted events.
type DomainContext struct {
	ServiceName string    `json:"service_name"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	RoleID      string    `json:"role_id"`
	RequestID   uuid.UUID `json:"request_id"`
	RequestedAt time.Time `json:"requested_at"`
	ClientIP    string    `json:"client_ip"`
}

// NewRequestContext builds a context for actor with a fresh request id and the
// current time. Callers acting on behalf of the service itself pass the
// configured system actor explicitly.
func NewRequestContext(serviceName, actor string) DomainContext {
	return DomainContext{
		ServiceName: serviceName,
		UserID:      actor,
		RequestID:   uuid.New(),
		RequestedAt: Now(),
	}
}

// Actor returns the identifier recorded in audit information.
func (c DomainContext) Actor() string {
	return c.UserID
}
