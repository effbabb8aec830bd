package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cartMutation changes a loaded cart in memory; the caller persists the result.
type cartMutation func(cart *entity.Cart, product *entity.Product) error

// AddProduct puts a catalog product in the user's cart with count 1.
func (srv *cartService) AddProduct(ctx context.Context, userID, productID int64) (*usecase.CartOutput, error) {
	return srv.mutate(ctx, "add", userID, productID, func(cart *entity.Cart, product *entity.Product) error {
		return cart.AddProduct(product)
	})
}

// UpdateProduct sets the count of a product already in the user's cart.
func (srv *cartService) UpdateProduct(ctx context.Context, userID, productID int64, count int) (*usecase.CartOutput, error) {
	return srv.mutate(ctx, "update", userID, productID, func(cart *entity.Cart, product *entity.Product) error {
		return cart.UpdateProduct(product, count)
	})
}

// DeleteProduct removes a product from the user's cart.
func (srv *cartService) DeleteProduct(ctx context.Context, userID, productID int64) (*usecase.CartOutput, error) {
	return srv.mutate(ctx, "delete", userID, productID, func(cart *entity.Cart, product *entity.Product) error {
		return cart.DeleteProduct(product)
	})
}

// FindCart returns the current content of the user's cart.
func (srv *cartService) FindCart(ctx context.Context, userID int64) (*usecase.CartOutput, error) {
	cart, err := findCart(ctx, srv.cartRepo, userID)
	if err != nil {
		return nil, err
	}

	return toCartOutput(cart), nil
}

// mutate loads the cart (locked) and the product, applies fn and saves the
// cart, all in one transaction. A missing cart is reported before a missing product.
func (srv *cartService) mutate(ctx context.Context, action string, userID, productID int64, fn cartMutation) (*usecase.CartOutput, error) {
	var saved *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := findCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		product, err := findProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}

		if err := fn(cart, product); err != nil {
			return err
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		saved = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Cart change rejected",
			slog.String("action", action),
			slog.Int64("userID", userID),
			slog.Int64("productID", productID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Cart changed",
		slog.String("action", action),
		slog.Int64("cartID", saved.ID()),
		slog.Int64("productID", productID),
	)

	return toCartOutput(saved), nil
}

func findCart(ctx context.Context, cartRepo repository.CartRepository, userID int64) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WithDetailsf("user %d has no cart", userID)
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID int64) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetailsf("product %d does not exist", productID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
