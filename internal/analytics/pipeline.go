package analytics

import (
	"insight/internal/domain/entity"
)

// Prepared holds the shared intermediate stages of one pipeline run.
type Prepared struct {
	Dataset     *entity.Dataset
	LineItems   []entity.LineItem
	OrderTotals []entity.OrderTotal
}

// Prepare validates ds, flattens it and computes order totals.
func Prepare(ds *entity.Dataset) (*Prepared, error) {
	if err := ValidateDataset(ds); err != nil {
		return nil, err
	}

	lines, err := Flatten(ds.Orders, ds.OrderItems, ds.Products, ds.Customers)
	if err != nil {
		return nil, err
	}

	totals, err := OrderTotals(lines)
	if err != nil {
		return nil, err
	}

	return &Prepared{
		Dataset:     ds,
		LineItems:   lines,
		OrderTotals: totals,
	}, nil
}

// Summarize computes every report from ds, ranking top customers to topN.
func Summarize(ds *entity.Dataset, topN int) (*entity.SalesSummary, error) {
	prepared, err := Prepare(ds)
	if err != nil {
		return nil, err
	}

	topCustomers, err := TopCustomers(prepared.OrderTotals, topN)
	if err != nil {
		return nil, err
	}

	products, err := ProductPerformance(prepared.LineItems)
	if err != nil {
		return nil, err
	}

	cities, err := CitySummary(ds.Customers, prepared.OrderTotals)
	if err != nil {
		return nil, err
	}

	reports, err := CustomerReports(ds.Customers, prepared.OrderTotals)
	if err != nil {
		return nil, err
	}

	return &entity.SalesSummary{
		OrderTotals:        prepared.OrderTotals,
		TopCustomers:       topCustomers,
		ProductPerformance: products,
		CitySummary:        cities,
		CustomerReports:    reports,
	}, nil
}
