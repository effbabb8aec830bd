package entity

import (
	"testing"

	domainerrors "mart/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, id int64, name, price string) *Product {
	t.Helper()

	product, err := NewProductWithID(id, name, "https://mart.example/"+name+".png", price)
	require.NoError(t, err)

	return product
}

func TestNewProduct_Accessors(t *testing.T) {
	product, err := NewProduct("chicken", "https://mart.example/chicken.png", "20000")
	require.NoError(t, err)

	assert.Zero(t, product.ID())
	assert.Equal(t, "chicken", product.Name())
	assert.Equal(t, "https://mart.example/chicken.png", product.ImageURL())
	assert.Equal(t, "20000", product.Price().String())
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := NewProduct("   ", "", "100")
	assert.True(t, errors.Is(err, domainerrors.ErrBlankName))

	_, err = NewProduct("pizza", "", "-100")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
}

func TestProduct_Equal(t *testing.T) {
	persisted := newTestProduct(t, 1, "chicken", "20000")
	reloaded := newTestProduct(t, 1, "chicken", "21000")
	other := newTestProduct(t, 2, "chicken", "20000")
	fresh := newTestProduct(t, 0, "chicken", "20000")
	freshTwin := newTestProduct(t, 0, "chicken", "20000")

	assert.True(t, persisted.Equal(reloaded), "persisted products compare by id")
	assert.False(t, persisted.Equal(other))
	assert.False(t, persisted.Equal(fresh))
	assert.True(t, fresh.Equal(freshTwin), "fresh products compare by value")
	assert.False(t, fresh.Equal(nil))
}
