package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID       int64           `gorm:"primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Category string          `gorm:"type:varchar(100);not null;default:''"`
	Price    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
