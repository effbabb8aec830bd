package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published after an order has been committed.
type OrderPlacedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	TotalPrice string    `json:"total_price"`
	UnitCount  int       `json:"unit_count"`
	PlacedAt   time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlacedEvent publishes an order event for downstream consumers
	PublishOrderPlacedEvent(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
