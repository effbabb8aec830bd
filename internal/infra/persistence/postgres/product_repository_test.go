package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mart/internal/domain/repository"
	"mart/internal/errors"
)

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created := createTestProduct(t, db, "apple", "1500")
	assert.NotZero(t, created.ID())
	assert.Equal(t, "apple", created.Name())
	assert.Equal(t, "1500", created.Price().String())

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.True(t, created.Equal(found))
	assert.Equal(t, "https://mart.example/apple.png", found.ImageURL())
}

func TestProductRepository_FindAllOrdersByID(t *testing.T) {
	db := newTestDB(t)
	apple := createTestProduct(t, db, "apple", "1500")
	pear := createTestProduct(t, db, "pear", "0")

	products, err := NewProductRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, apple.Equal(products[0]))
	assert.True(t, pear.Equal(products[1]))
	assert.Equal(t, "0", products[1].Price().String())
}

func TestProductRepository_FindAllEmpty(t *testing.T) {
	products, err := NewProductRepository(newTestDB(t)).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_NotFound(t *testing.T) {
	_, err := NewProductRepository(newTestDB(t)).FindByID(context.Background(), 404)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
