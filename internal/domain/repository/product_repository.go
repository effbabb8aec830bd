package repository

import (
	"context"

	"mart/internal/domain/entity"
	"mart/internal/errors"
)

// ErrProductNotFound is returned when no product matches the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product persistence.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAll lists every product ordered by id.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product and returns it with its generated id.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
}
