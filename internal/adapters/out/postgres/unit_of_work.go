// Package postgres provides the GORM-based Unit of Work and schema migration.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction and report the aggregates they save; on Commit
// the domain events of every tracked aggregate are written to the outbox in the
// same transaction, so state changes and their events are stored atomically.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().FindByID(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = o.Pay(requestCtx); err != nil {
//	    return err
//	}
//	if _, err = uow.OrderRepository().Save(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // OrderPaid lands in outbox_events
//
// Each UnitOfWork instance is meant for a single goroutine and a single
// business operation.
package postgres

import (
	"context"
	"fmt"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work whose events
// still have to reach the outbox.
type trackedAggregate struct {
	AggregateType string
	AggregateID   string
	Aggregate     kernel.EventRecorder
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state and
// tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order, user
// and outbox repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events of tracked aggregates to the outbox,
// commits the transaction and then clears those events from the aggregates.
// On failure nothing is cleared and the caller is expected to roll back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.writeOutbox(ctx); err != nil {
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.tx = nil
		return err
	}
	uow.tx = nil

	for _, tracked := range uow.trackedAggregates {
		tracked.Aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. Tracked aggregates keep their events.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a saved aggregate. Saving the same aggregate twice
// keeps a single entry.
func (uow *GormUnitOfWork) TrackAggregate(aggregateType, aggregateID string, aggregate kernel.EventRecorder) {
	for i := range uow.trackedAggregates {
		if uow.trackedAggregates[i].Aggregate == aggregate {
			uow.trackedAggregates[i].AggregateID = aggregateID
			return
		}
	}

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Aggregate:     aggregate,
	})
}

func (uow *GormUnitOfWork) writeOutbox(ctx context.Context) error {
	var rows []outboxrepo.OutboxEventDTO
	for _, tracked := range uow.trackedAggregates {
		for _, event := range tracked.Aggregate.DomainEvents() {
			row, err := outboxrepo.NewOutboxEvent(tracked.AggregateType, tracked.AggregateID, event)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
	}

	if err := outboxrepo.NewGormOutboxRepository(uow.tx).AddEvents(ctx, rows); err != nil {
		return fmt.Errorf("write outbox: %w", err)
	}
	return nil
}

// conn returns the open transaction, or the pool when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
