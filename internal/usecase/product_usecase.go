package usecase

import (
	"context"
)

// CreateProductInput defines the data required to register a product.
// A nil Name is reported as a missing name rather than an empty one.
type CreateProductInput struct {
	Name     *string
	ImageURL string
	Price    string
}

// ProductOutput is the catalog view of a product.
type ProductOutput struct {
	ID       int64
	Name     string
	ImageURL string
	Price    string
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	FindProducts(ctx context.Context) ([]*ProductOutput, error)
}
