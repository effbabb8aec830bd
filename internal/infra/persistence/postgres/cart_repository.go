package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/infra/persistence/model"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
	// forUpdate locks the cart row on read; set for transaction-bound instances.
	forUpdate bool
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads the cart of a user together with its products.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	query := repo.db.WithContext(ctx)
	if repo.forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var cartM model.CartModel
	err := query.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") }).
		Preload("Products.Product").
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM)
}

// Create persists an empty cart and returns it carrying the generated id.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	cartM := &model.CartModel{UserID: cart.UserID()}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "user already owns a cart")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return entity.NewCart(cartM.ID, cartM.UserID), nil
}

// Save replaces the stored product lines of the cart with its current content.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if cart.ID() == 0 {
		return errors.New("cannot save a cart that was never persisted")
	}

	items := cart.Items()
	rows := make([]model.CartProductModel, 0, len(items))
	for _, item := range items {
		if item.Product.ID() == 0 {
			return errors.Errorf("cannot save unpersisted product %q in cart %d", item.Product.Name(), cart.ID())
		}
		rows = append(rows, model.CartProductModel{
			CartID:    cart.ID(),
			ProductID: item.Product.ID(),
			Count:     item.Count,
		})
	}

	db := repo.db.WithContext(ctx)
	if err := db.Where("cart_id = ?", cart.ID()).Delete(&model.CartProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart products")
	}

	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart references a missing product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNonPositiveCount.WrapMessage("cart product count must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart products")
	}

	return nil
}

func toCartDomain(data *model.CartModel) (*entity.Cart, error) {
	items := make([]entity.CartItem, 0, len(data.Products))
	for _, line := range data.Products {
		product, err := toProductDomain(&line.Product)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.CartItem{Product: *product, Count: line.Count})
	}

	cart, err := entity.RestoreCart(data.ID, data.UserID, items)
	if err != nil {
		return nil, errors.Wrapf(err, "stored cart %d is invalid", data.ID)
	}

	return cart, nil
}
