package usecase

import (
	"context"

	"insight/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CustomerReportQuery narrows the customer report list.
// A nil City, or an empty one, matches every city.
type CustomerReportQuery struct {
	MinRevenue decimal.Decimal
	City       *string
}

// ReportUsecase defines the sales report use cases.
// Every call reads one consistent snapshot of the dataset.
type ReportUsecase interface {
	// OrderTotals returns one total per order, by order date then order id
	OrderTotals(ctx context.Context) ([]entity.OrderTotal, error)

	// TopCustomers returns the n customers with the highest lifetime spend.
	// n must be between 0 and the configured maximum
	TopCustomers(ctx context.Context, n int) ([]entity.CustomerRank, error)

	// ProductPerformance returns quantity and revenue per product that sold at least once
	ProductPerformance(ctx context.Context) ([]entity.ProductPerformance, error)

	// CitySummary returns customer count and revenue per city
	CitySummary(ctx context.Context) ([]entity.CityReport, error)

	// CustomerReports returns per-customer spend and average order value matching query
	CustomerReports(ctx context.Context, query CustomerReportQuery) ([]entity.CustomerReport, error)

	// Summary computes every report from the same snapshot
	Summary(ctx context.Context, topN int) (*entity.SalesSummary, error)
}
