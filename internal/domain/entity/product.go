package entity

// Product is the reference entity a Cart and an Order are built from.
// ID is zero until the product is persisted.
type Product struct {
	id       int64
	name     Name
	imageURL string
	price    Price
}

// ProductKey is the identity a Cart uses to tell products apart: the id once
// persisted, the full value before that. Two loads of the same stored product
// share a key even if their other fields were read at different times.
type ProductKey struct {
	id       int64
	name     string
	imageURL string
	price    string
}

// NewProduct builds a product that has not been persisted yet.
func NewProduct(name, imageURL, price string) (*Product, error) {
	return NewProductWithID(0, name, imageURL, price)
}

// NewProductWithID builds a product, validating its name and price.
func NewProductWithID(id int64, name, imageURL, price string) (*Product, error) {
	validName, err := NewName(name)
	if err != nil {
		return nil, err
	}

	validPrice, err := NewPrice(price)
	if err != nil {
		return nil, err
	}

	return &Product{
		id:       id,
		name:     validName,
		imageURL: imageURL,
		price:    validPrice,
	}, nil
}

// ID returns the persisted id, or 0.
func (p *Product) ID() int64 { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name.String() }

// ImageURL returns the product image location.
func (p *Product) ImageURL() string { return p.imageURL }

// Price returns the unit price.
func (p *Product) Price() Price { return p.price }

// Key returns the equality key of the product.
func (p *Product) Key() ProductKey {
	if p.id != 0 {
		return ProductKey{id: p.id}
	}

	return ProductKey{
		name:     p.name.String(),
		imageURL: p.imageURL,
		price:    p.price.String(),
	}
}

// Equal reports whether both products denote the same product.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.Key() == other.Key()
}
