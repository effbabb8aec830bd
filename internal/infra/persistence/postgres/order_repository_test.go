package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mart/internal/domain/entity"
	"mart/internal/domain/repository"
	"mart/internal/errors"
)

func placeTestOrder(t *testing.T, repo repository.OrderRepository, userID int64, products ...*entity.Product) *entity.Order {
	t.Helper()

	units := make([]entity.Product, 0, len(products))
	for _, p := range products {
		units = append(units, *p)
	}

	order, err := entity.NewOrder(units)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), userID, order)
	require.NoError(t, err)

	return created
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "hello@hello.world")
	apple := createTestProduct(t, db, "apple", "1500")
	pear := createTestProduct(t, db, "pear", "700")

	created := placeTestOrder(t, repo, user.ID(), apple, pear, pear)
	assert.NotZero(t, created.ID())
	assert.Equal(t, "2900", created.TotalPrice())

	found, err := repo.FindByID(context.Background(), user.ID(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "2900", found.TotalPrice())

	lines := found.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "apple", lines[0].Product.Name())
	assert.Equal(t, 1, lines[0].Count)
	assert.Equal(t, "pear", lines[1].Product.Name())
	assert.Equal(t, 2, lines[1].Count)
}

func TestOrderRepository_CreateManyUnits(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "bulk@hello.world")
	apple := createTestProduct(t, db, "apple", "1500")

	const count = 10000
	units := make([]entity.Product, count)
	for i := range units {
		units[i] = *apple
	}
	order, err := entity.NewOrder(units)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), user.ID(), order)
	require.NoError(t, err)
	assert.Equal(t, "15000000", created.TotalPrice())

	found, err := repo.FindByID(context.Background(), user.ID(), created.ID())
	require.NoError(t, err)
	require.Len(t, found.Lines(), 1)
	assert.Equal(t, count, found.Lines()[0].Count)
}

func TestOrderRepository_FindByIDScopedToUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	owner := createTestUser(t, db, "owner@hello.world")
	other := createTestUser(t, db, "other@hello.world")
	apple := createTestProduct(t, db, "apple", "1500")
	order := placeTestOrder(t, repo, owner.ID(), apple)

	_, err := repo.FindByID(context.Background(), other.ID(), order.ID())
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_FindByUserIDNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "hello@hello.world")
	apple := createTestProduct(t, db, "apple", "1500")
	pear := createTestProduct(t, db, "pear", "700")
	first := placeTestOrder(t, repo, user.ID(), apple)
	second := placeTestOrder(t, repo, user.ID(), pear, pear)

	orders, err := repo.FindByUserID(context.Background(), user.ID())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID(), orders[0].ID())
	assert.Equal(t, "1400", orders[0].TotalPrice())
	assert.Equal(t, first.ID(), orders[1].ID())
	assert.Equal(t, "1500", orders[1].TotalPrice())
}

func TestOrderRepository_SnapshotSurvivesProductChange(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	user := createTestUser(t, db, "hello@hello.world")
	apple := createTestProduct(t, db, "apple", "1500")
	order := placeTestOrder(t, repo, user.ID(), apple)

	require.NoError(t, db.Exec("UPDATE products SET price = 9999 WHERE id = ?", apple.ID()).Error)

	found, err := repo.FindByID(context.Background(), user.ID(), order.ID())
	require.NoError(t, err)
	assert.Equal(t, "1500", found.TotalPrice())
}
