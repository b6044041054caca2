package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	MinOutboxBatchSize = 1
	MaxOutboxBatchSize = 1000
	MinOutboxRetries   = 1
	MaxOutboxRetries   = 100
)

var (
	ErrPublishOutboxEventsCommandIsNotConstructed = errors.New(
		"PublishOutboxEventsCommand must be created via NewPublishOutboxEventsCommand constructor",
	)
)

// PublishOutboxEventsCommand relays one batch of pending outbox messages.
//
// Example:
//
//	cmd, err := NewPublishOutboxEventsCommand(100, 5)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type PublishOutboxEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize  int
	maxRetries int

	guard guard.ConstructorGuard
}

// NewPublishOutboxEventsCommand validates that batchSize lies in
// [MinOutboxBatchSize, MaxOutboxBatchSize] and maxRetries in
// [MinOutboxRetries, MaxOutboxRetries].
func NewPublishOutboxEventsCommand(batchSize, maxRetries int) (PublishOutboxEventsCommand, error) {
	var errList []error
	if batchSize < MinOutboxBatchSize || batchSize > MaxOutboxBatchSize {
		errList = append(errList,
			errs.NewValueIsOutOfRangeError("batch size", batchSize, MinOutboxBatchSize, MaxOutboxBatchSize))
	}
	if maxRetries < MinOutboxRetries || maxRetries > MaxOutboxRetries {
		errList = append(errList,
			errs.NewValueIsOutOfRangeError("max retries", maxRetries, MinOutboxRetries, MaxOutboxRetries))
	}
	if err := errors.Join(errList...); err != nil {
		return PublishOutboxEventsCommand{}, err
	}

	return PublishOutboxEventsCommand{
		batchSize:  batchSize,
		maxRetries: maxRetries,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxEventsCommandIsNotConstructed)
}

func (c PublishOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}

func (c PublishOutboxEventsCommand) MaxRetries() int {
	return c.maxRetries
}
