package postgres

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/infra/persistence/model"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM)
}

// FindAll lists every product ordered by id.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		product, err := toProductDomain(&productMs[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Create persists a new product and returns it carrying the generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return toProductDomain(productM)
}

func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	product, err := entity.NewProductWithID(data.ID, data.Name, data.ImageURL, data.Price.String())
	if err != nil {
		return nil, errors.Wrapf(err, "stored product %d is invalid", data.ID)
	}

	return product, nil
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:       data.ID(),
		Name:     data.Name(),
		ImageURL: data.ImageURL(),
		Price:    data.Price().Decimal(),
	}
}

// productFromSnapshot rebuilds a product from values copied into another table.
func productFromSnapshot(id int64, name, imageURL string, price decimal.Decimal) (entity.Product, error) {
	product, err := entity.NewProductWithID(id, name, imageURL, price.String())
	if err != nil {
		return entity.Product{}, errors.Wrapf(err, "stored product snapshot %d is invalid", id)
	}

	return *product, nil
}
