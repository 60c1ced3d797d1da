package main

import (
	"insight/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the sales tables.
func main() {
	models := []any{
		model.ProductModel{},
		model.CustomerModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
