// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work, the transactional outbox and
// the event publisher. Adapters under internal/adapters implement them.
package ports
