package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mart/internal/domain/entity"
	"mart/internal/domain/repository"
	mockRepo "mart/internal/mocks/repository"
)

const (
	testEmail    = "hello@hello.world"
	testPassword = "hello!123"
	testHash     = "$2a$04$hashed"
	testUserID   = int64(3)
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos is the set of transaction-bound repositories handed to Execute callbacks.
type txRepos struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}
	repos.factory.EXPECT().UserRepo().Return(repos.userRepo).Maybe()
	repos.factory.EXPECT().ProductRepo().Return(repos.productRepo).Maybe()
	repos.factory.EXPECT().CartRepo().Return(repos.cartRepo).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.orderRepo).Maybe()

	return repos
}

// expectTransaction makes the mocked manager run the callback against repos
// and return whatever the callback returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func newTestProduct(t *testing.T, id int64, name, price string) *entity.Product {
	t.Helper()

	product, err := entity.NewProductWithID(id, name, "https://mart.example/"+name+".png", price)
	require.NoError(t, err)

	return product
}

func newTestCart(t *testing.T, items ...entity.CartItem) *entity.Cart {
	t.Helper()

	cart, err := entity.RestoreCart(1, testUserID, items)
	require.NoError(t, err)

	return cart
}
