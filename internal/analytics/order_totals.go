package analytics

import (
	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"
)

// OrderTotals sums line totals per order, ordered by order date then order id.
// Line items of the same order must agree on customer and date; a disagreement is
// a data-integrity fault reported as ConsistencyError.
func OrderTotals(lines []entity.LineItem) ([]entity.OrderTotal, error) {
	groups, err := GroupReduce(lines,
		func(line entity.LineItem) int64 { return line.OrderID },
		func(acc entity.OrderTotal, line entity.LineItem, seen bool) (entity.OrderTotal, error) {
			if !seen {
				return entity.OrderTotal{
					OrderID:      line.OrderID,
					CustomerID:   line.CustomerID,
					CustomerName: line.CustomerName,
					OrderDate:    line.OrderDate,
					Total:        line.LineTotal,
				}, nil
			}

			if field, ok := orderConflict(acc, line); ok {
				return acc, &domainerrors.ConsistencyError{Entity: "order", Key: line.OrderID, Field: field}
			}

			acc.Total = acc.Total.Add(line.LineTotal)

			return acc, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return Rank(collect(groups), compareOrderTotals, -1), nil
}

func orderConflict(acc entity.OrderTotal, line entity.LineItem) (string, bool) {
	switch {
	case acc.CustomerID != line.CustomerID:
		return "customer_id", true
	case acc.CustomerName != line.CustomerName:
		return "customer_name", true
	case !acc.OrderDate.Equal(line.OrderDate):
		return "order_date", true
	default:
		return "", false
	}
}
