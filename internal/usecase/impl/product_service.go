package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/entity"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates and registers a product in the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	name, err := entity.ParseName(input.Name)
	if err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(name.String(), input.ImageURL, input.Price)
	if err != nil {
		return nil, err
	}

	created, err := srv.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", created.ID()), slog.String("price", created.Price().String()))

	return toProductOutput(created), nil
}

// FindProducts lists the catalog.
func (srv *productService) FindProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, toProductOutput(product))
	}

	return outputs, nil
}
