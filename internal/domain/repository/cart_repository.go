package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"
)

// ErrCartNotFound is returned when a user has no cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines cart persistence. A user owns at most one cart.
type CartRepository interface {
	// FindByUserID loads the cart of a user together with its products.
	// Inside a transaction the cart row is locked until commit.
	FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error)

	// Create persists an empty cart and returns it with its generated id.
	Create(ctx context.Context, cart *entity.Cart) (*entity.Cart, error)

	// Save replaces the stored product lines of a persisted cart with the cart's current content.
	Save(ctx context.Context, cart *entity.Cart) error
}
