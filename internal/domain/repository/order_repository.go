package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"
)

// ErrOrderNotFound is returned when no order of the user matches the id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository stores orders as immutable snapshots, one row per purchased unit.
type OrderRepository interface {
	// Create persists the order for userID and returns it with its generated id.
	Create(ctx context.Context, userID int64, order *entity.Order) (*entity.Order, error)

	// FindByID loads an order owned by userID.
	FindByID(ctx context.Context, userID, orderID int64) (*entity.Order, error)

	// FindByUserID lists the orders of a user, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
}
