// Package kernel provides the building blocks shared by the ordering domain model.
//
// The package includes:
//   - UserID: positive numeric identifier of users and customers
//   - AuditInfo: immutable creation/modification stamps
//   - DomainContext: request metadata passed into aggregate operations
//   - DomainEvent and BaseEvent: the shape of events recorded by aggregates
//   - EventRecorder: implemented by aggregates whose events reach the outbox
//
// Values in this package are immutable and safe to copy.
package kernel
