package usecase

import (
	"context"
)

// OrderItemOutput is one line of an order: a product snapshot and how many units were bought.
type OrderItemOutput struct {
	ProductID int64
	Name      string
	ImageURL  string
	Price     string
	Count     int
}

// OrderDetailOutput describes a placed order.
type OrderDetailOutput struct {
	OrderID    int64
	Items      []OrderItemOutput
	TotalPrice string
}

// OrderUsecase defines order placement and lookup for the authenticated user.
type OrderUsecase interface {
	// PlaceOrder turns the whole cart into an order and empties the cart.
	PlaceOrder(ctx context.Context, userID int64) (*OrderDetailOutput, error)
	FindOrder(ctx context.Context, userID, orderID int64) (*OrderDetailOutput, error)
	FindOrders(ctx context.Context, userID int64) ([]*OrderDetailOutput, error)
	// OrderReceiptQR renders the receipt of an order as a PNG QR code.
	OrderReceiptQR(ctx context.Context, userID, orderID int64) ([]byte, error)
}
