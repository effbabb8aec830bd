package entity

import (
	"math"
	"sort"

	domainerrors "mart/internal/domain/errors"
)

// CartItem is one product line of a cart.
type CartItem struct {
	Product Product
	Count   int
}

// Cart is a user's selection of products with quantities. A product appears
// at most once and its count is always at least 1.
type Cart struct {
	id     int64
	userID int64
	items  map[ProductKey]*CartItem
}

// NewCart returns an empty cart owned by userID. cartID is zero until persisted.
func NewCart(cartID, userID int64) *Cart {
	return &Cart{
		id:     cartID,
		userID: userID,
		items:  make(map[ProductKey]*CartItem),
	}
}

// RestoreCart rebuilds a persisted cart, enforcing the same invariants as the mutators.
func RestoreCart(cartID, userID int64, items []CartItem) (*Cart, error) {
	cart := NewCart(cartID, userID)
	for i := range items {
		item := items[i]
		if err := validateCount(item.Count); err != nil {
			return nil, err
		}
		if err := cart.validateAbsent(&item.Product); err != nil {
			return nil, err
		}
		cart.items[item.Product.Key()] = &CartItem{Product: item.Product, Count: item.Count}
	}

	return cart, nil
}

// AddProduct puts product in the cart with count 1. Adding a product that is
// already present is an error, not an increment.
func (c *Cart) AddProduct(product *Product) error {
	if product == nil {
		return domainerrors.ErrNullProduct
	}

	if err := c.validateAbsent(product); err != nil {
		return err
	}

	c.items[product.Key()] = &CartItem{Product: *product, Count: 1}

	return nil
}

// UpdateProduct sets the count of a product already in the cart.
func (c *Cart) UpdateProduct(product *Product, count int) error {
	if product == nil {
		return domainerrors.ErrNullProduct
	}

	if err := validateCount(count); err != nil {
		return err
	}

	item, ok := c.items[product.Key()]
	if !ok {
		return domainerrors.ErrUpdatableProductNotInCart.WithDetailsf("product %q is not in cart", product.Name())
	}

	item.Count = count

	return nil
}

// DeleteProduct removes a product from the cart.
func (c *Cart) DeleteProduct(product *Product) error {
	if product == nil {
		return domainerrors.ErrNullProduct
	}

	key := product.Key()
	if _, ok := c.items[key]; !ok {
		return domainerrors.ErrDeletableProductNotInCart.WithDetailsf("product %q is not in cart", product.Name())
	}

	delete(c.items, key)

	return nil
}

// Clear removes every product, e.g. once the cart has been ordered.
func (c *Cart) Clear() {
	c.items = make(map[ProductKey]*CartItem)
}

func (c *Cart) validateAbsent(product *Product) error {
	if _, ok := c.items[product.Key()]; ok {
		return domainerrors.ErrProductAlreadyInCart.WithDetailsf("product %q already exists in cart", product.Name())
	}

	return nil
}

func validateCount(count int) error {
	if count <= 0 {
		return domainerrors.ErrNonPositiveCount.WithDetailsf("count %d is not positive", count)
	}

	return nil
}

// ID returns the persisted cart id, or 0.
func (c *Cart) ID() int64 { return c.id }

// UserID returns the owner of the cart.
func (c *Cart) UserID() int64 { return c.userID }

// Len returns the number of distinct products.
func (c *Cart) Len() int { return len(c.items) }

// Count returns the quantity of product, or 0 when it is not in the cart.
func (c *Cart) Count(product *Product) int {
	if product == nil {
		return 0
	}
	if item, ok := c.items[product.Key()]; ok {
		return item.Count
	}

	return 0
}

// ProductCounts returns a copy of the product to quantity mapping.
func (c *Cart) ProductCounts() map[ProductKey]CartItem {
	counts := make(map[ProductKey]CartItem, len(c.items))
	for key, item := range c.items {
		counts[key] = *item
	}

	return counts
}

// Items returns a copy of the cart lines ordered by product id, then name.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Product.id != items[j].Product.id {
			return items[i].Product.id < items[j].Product.id
		}

		return items[i].Product.name.String() < items[j].Product.name.String()
	})

	return items
}

// TotalUnits sums the counts of every line, saturating at math.MaxInt.
func (c *Cart) TotalUnits() int {
	total := 0
	for _, item := range c.items {
		if item.Count > math.MaxInt-total {
			return math.MaxInt
		}
		total += item.Count
	}

	return total
}

// Units expands the cart into one product entry per unit, the shape an Order is built from.
// It allocates TotalUnits entries, so callers bound that first.
func (c *Cart) Units() []Product {
	var units []Product
	for _, item := range c.Items() {
		for range item.Count {
			units = append(units, item.Product)
		}
	}

	return units
}

// Equal compares ids and the full product to quantity mapping.
func (c *Cart) Equal(other *Cart) bool {
	if c == nil || other == nil {
		return c == other
	}

	if c.id != other.id || c.userID != other.userID || len(c.items) != len(other.items) {
		return false
	}

	for key, item := range c.items {
		otherItem, ok := other.items[key]
		if !ok || otherItem.Count != item.Count {
			return false
		}
	}

	return true
}
