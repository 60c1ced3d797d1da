package analytics

import (
	"cmp"
	"slices"

	"insight/internal/domain/entity"
)

// Rank sorts rows in place by compare and keeps the first n. A negative n keeps all rows.
// compare must be a total order so that the result is deterministic.
func Rank[T any](rows []T, compare func(a, b T) int, n int) []T {
	slices.SortStableFunc(rows, compare)

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}

	return rows
}

// Ascending order date, then order id.
func compareOrderTotals(a, b entity.OrderTotal) int {
	if c := a.OrderDate.Compare(b.OrderDate); c != 0 {
		return c
	}

	return cmp.Compare(a.OrderID, b.OrderID)
}

// Descending spend, then customer name, then customer id.
func compareCustomerRanks(a, b entity.CustomerRank) int {
	if c := b.TotalSpent.Cmp(a.TotalSpent); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CustomerName, b.CustomerName); c != 0 {
		return c
	}

	return cmp.Compare(a.CustomerID, b.CustomerID)
}

func compareCustomerReports(a, b entity.CustomerReport) int {
	if c := b.TotalSpent.Cmp(a.TotalSpent); c != 0 {
		return c
	}
	if c := cmp.Compare(a.CustomerName, b.CustomerName); c != 0 {
		return c
	}

	return cmp.Compare(a.CustomerID, b.CustomerID)
}

// Descending revenue, then product id.
func compareProductPerformance(a, b entity.ProductPerformance) int {
	if c := b.Revenue.Cmp(a.Revenue); c != 0 {
		return c
	}

	return cmp.Compare(a.ProductID, b.ProductID)
}

// Descending revenue, then city name.
func compareCityReports(a, b entity.CityReport) int {
	if c := b.Revenue.Cmp(a.Revenue); c != 0 {
		return c
	}

	return cmp.Compare(a.City, b.City)
}
