package entity

import (
	domainerrors "mart/internal/domain/errors"
)

// OrderLine groups the units of one product inside an order.
type OrderLine struct {
	Product Product
	Count   int
}

// Order is an immutable snapshot of purchased products. Products holds one
// entry per unit bought, so a product listed three times was bought three times.
type Order struct {
	id         int64
	products   []Product
	totalPrice Price
}

// NewOrder builds an order from a non-empty list of product units.
func NewOrder(products []Product) (*Order, error) {
	return RestoreOrder(0, products)
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(id int64, products []Product) (*Order, error) {
	if len(products) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	total, err := calcTotalPrice(products)
	if err != nil {
		return nil, err
	}

	snapshot := make([]Product, len(products))
	copy(snapshot, products)

	return &Order{
		id:         id,
		products:   snapshot,
		totalPrice: total,
	}, nil
}

func calcTotalPrice(products []Product) (Price, error) {
	if len(products) == 0 {
		return Price{}, domainerrors.ErrTotalPriceUnavailable
	}

	total := products[0].price
	for _, product := range products[1:] {
		total = total.Add(product.price)
	}

	return total, nil
}

// ID returns the persisted order id, or 0.
func (o *Order) ID() int64 { return o.id }

// TotalPrice returns the exact sum of all unit prices as a decimal string.
func (o *Order) TotalPrice() string { return o.totalPrice.String() }

// Products returns a copy of the purchased units.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)

	return products
}

// Lines groups the units by product, in the order each product first appears.
func (o *Order) Lines() []OrderLine {
	index := make(map[ProductKey]int)
	var lines []OrderLine
	for _, product := range o.products {
		key := product.Key()
		if i, ok := index[key]; ok {
			lines[i].Count++

			continue
		}
		index[key] = len(lines)
		lines = append(lines, OrderLine{Product: product, Count: 1})
	}

	return lines
}
