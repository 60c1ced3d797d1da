// Package entity contains the core business objects of the project.
package entity

import "github.com/shopspring/decimal"

// Product is a sellable catalogue item. Price is the unit price and is never negative.
type Product struct {
	ID       int64           `json:"id" validate:"gt=0"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" validate:"nonneg_decimal"`
}
