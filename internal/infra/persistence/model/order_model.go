package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	UserID     int64           `gorm:"not null;index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt  time.Time

	Products []OrderProductModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductModel mirrors the 'order_products' table. Each row is one
// purchased unit holding a snapshot of the product at ordering time.
type OrderProductModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	Name      string          `gorm:"type:varchar(80);not null"`
	ImageURL  string          `gorm:"type:text;not null;default:''"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderProductModel) TableName() string {
	return "order_products"
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartModel{},
		&CartProductModel{},
		&OrderModel{},
		&OrderProductModel{},
	}
}
