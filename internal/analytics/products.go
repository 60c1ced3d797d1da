package analytics

import (
	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"
)

// ProductPerformance sums sold quantity and revenue per product, by revenue
// descending then product id. Products without sales never appear.
func ProductPerformance(lines []entity.LineItem) ([]entity.ProductPerformance, error) {
	groups, err := GroupReduce(lines,
		func(line entity.LineItem) int64 { return line.ProductID },
		func(acc entity.ProductPerformance, line entity.LineItem, seen bool) (entity.ProductPerformance, error) {
			if !seen {
				acc.ProductID = line.ProductID
				acc.ProductName = line.ProductName
				acc.Category = line.Category
			} else if acc.ProductName != line.ProductName {
				return acc, &domainerrors.ConsistencyError{Entity: "product", Key: line.ProductID, Field: "product_name"}
			}

			acc.QtySold += line.Quantity
			acc.Revenue = acc.Revenue.Add(line.LineTotal)

			return acc, nil
		},
	)
	if err != nil {
		return nil, err
	}

	performance := make([]entity.ProductPerformance, 0, len(groups))
	for _, p := range groups {
		if p.QtySold == 0 {
			continue
		}
		performance = append(performance, p)
	}

	return Rank(performance, compareProductPerformance, -1), nil
}
