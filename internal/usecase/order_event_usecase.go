package usecase

import (
	"context"

	"mart/internal/domain/service"
	"mart/internal/errors"
)

// ErrStaleOrderEvent marks an event that can never be processed, for example
// because its order does not exist. Consumers acknowledge it instead of retrying.
var ErrStaleOrderEvent = errors.New("stale order event")

// OrderEventUsecase consumes events published after order placement.
type OrderEventUsecase interface {
	// HandleOrderPlaced checks the event against the stored order. Errors
	// wrapping ErrStaleOrderEvent are permanent; any other error is transient.
	HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error
}
