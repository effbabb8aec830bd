package model

import (
	"time"
)

// CartModel mirrors the 'carts' table. A user owns at most one cart.
type CartModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []CartProductModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartProductModel mirrors the 'cart_products' table, one row per distinct product in a cart.
type CartProductModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CartID    int64 `gorm:"not null;uniqueIndex:idx_cart_products_cart_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_products_cart_product"`
	Count     int   `gorm:"not null;check:count > 0"`
	CreatedAt time.Time

	Product ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartProductModel) TableName() string {
	return "cart_products"
}
