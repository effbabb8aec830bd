package postgres

import (
	"context"

	"gorm.io/gorm"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/infra/persistence/model"
)

// orderUnitBatchSize keeps each unit insert well under the bind parameter
// limits of Postgres (65535) and SQLite (32766).
const orderUnitBatchSize = 1000

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order with one snapshot row per purchased unit.
func (repo *orderRepository) Create(ctx context.Context, userID int64, order *entity.Order) (*entity.Order, error) {
	orderM, err := fromOrderDomain(userID, order)
	if err != nil {
		return nil, err
	}

	units := orderM.Products
	orderM.Products = nil

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orderM).Error; err != nil {
			return err
		}

		for i := range units {
			units[i].OrderID = orderM.ID
		}

		return tx.CreateInBatches(units, orderUnitBatchSize).Error
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return entity.RestoreOrder(orderM.ID, order.Products())
}

// FindByID loads an order owned by userID.
func (repo *orderRepository) FindByID(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// FindByUserID lists the orders of a user, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user id")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		order, err := toOrderDomain(&orderMs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	products := make([]entity.Product, 0, len(data.Products))
	for _, unit := range data.Products {
		product, err := productFromSnapshot(unit.ProductID, unit.Name, unit.ImageURL, unit.Price)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	order, err := entity.RestoreOrder(data.ID, products)
	if err != nil {
		return nil, errors.Wrapf(err, "stored order %d is invalid", data.ID)
	}

	if order.TotalPrice() != data.TotalPrice.String() {
		return nil, errors.Errorf("stored order %d total %s does not match its products", data.ID, data.TotalPrice.String())
	}

	return order, nil
}

func fromOrderDomain(userID int64, data *entity.Order) (*model.OrderModel, error) {
	totalPrice, err := entity.NewPrice(data.TotalPrice())
	if err != nil {
		return nil, err
	}

	products := data.Products()
	units := make([]model.OrderProductModel, 0, len(products))
	for _, product := range products {
		units = append(units, model.OrderProductModel{
			ProductID: product.ID(),
			Name:      product.Name(),
			ImageURL:  product.ImageURL(),
			Price:     product.Price().Decimal(),
		})
	}

	return &model.OrderModel{
		UserID:     userID,
		TotalPrice: totalPrice.Decimal(),
		Products:   units,
	}, nil
}
