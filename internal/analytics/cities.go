package analytics

import (
	"insight/internal/domain/entity"
)

// CitySummary reports every customer city with its customer count and revenue.
// Customers without orders still count towards their city; a city whose customers
// never ordered has zero revenue. Ordered by revenue descending then city name.
func CitySummary(customers []entity.Customer, orderTotals []entity.OrderTotal) ([]entity.CityReport, error) {
	spend, err := ownedSpend(customers, orderTotals)
	if err != nil {
		return nil, err
	}

	groups, err := GroupReduce(customers,
		func(customer entity.Customer) string { return customer.City },
		func(acc entity.CityReport, customer entity.Customer, _ bool) (entity.CityReport, error) {
			acc.City = customer.City
			acc.CustomerCount++
			acc.Revenue = acc.Revenue.Add(spend[customer.ID].TotalSpent)

			return acc, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return Rank(collect(groups), compareCityReports, -1), nil
}
