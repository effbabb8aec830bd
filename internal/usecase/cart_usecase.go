package usecase

import (
	"context"
)

// CartItemOutput is one distinct product in a cart.
type CartItemOutput struct {
	ProductID int64
	Name      string
	ImageURL  string
	Price     string
	Count     int
}

// CartOutput is the current content of a user's cart.
type CartOutput struct {
	CartID     int64
	Items      []CartItemOutput
	TotalPrice string
}

// CartUsecase defines the operations on the cart of the authenticated user.
// Every mutation returns the cart as it was committed.
type CartUsecase interface {
	AddProduct(ctx context.Context, userID, productID int64) (*CartOutput, error)
	UpdateProduct(ctx context.Context, userID, productID int64, count int) (*CartOutput, error)
	DeleteProduct(ctx context.Context, userID, productID int64) (*CartOutput, error)
	FindCart(ctx context.Context, userID int64) (*CartOutput, error)
}
