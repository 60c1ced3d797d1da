package analytics

import (
	"fmt"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// CurrencyScale is the number of decimal places kept for derived averages.
const CurrencyScale int32 = 2

// TopCustomers ranks the customers owning orderTotals by total spend, descending,
// ties broken by name, and keeps the first n. Fewer than n customers yields all of
// them; n <= 0 yields none.
func TopCustomers(orderTotals []entity.OrderTotal, n int) ([]entity.CustomerRank, error) {
	spend, err := spendByCustomer(orderTotals)
	if err != nil {
		return nil, err
	}

	return Rank(collect(spend), compareCustomerRanks, max(n, 0)), nil
}

// CustomerReports builds one report per customer, including customers without orders.
// The average order value is zero when a customer has no orders.
func CustomerReports(customers []entity.Customer, orderTotals []entity.OrderTotal) ([]entity.CustomerReport, error) {
	spend, err := ownedSpend(customers, orderTotals)
	if err != nil {
		return nil, err
	}

	reports := make([]entity.CustomerReport, 0, len(customers))
	for _, customer := range customers {
		rank := spend[customer.ID]

		reports = append(reports, entity.CustomerReport{
			CustomerID:        customer.ID,
			CustomerName:      customer.Name,
			City:              customer.City,
			TotalSpent:        rank.TotalSpent,
			OrdersCount:       rank.OrdersCount,
			AverageOrderValue: averageOrderValue(rank.TotalSpent, rank.OrdersCount),
		})
	}

	return Rank(reports, compareCustomerReports, -1), nil
}

func averageOrderValue(total decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}

	return total.DivRound(decimal.NewFromInt(int64(orders)), CurrencyScale)
}

// spendByCustomer groups order totals by owning customer.
func spendByCustomer(orderTotals []entity.OrderTotal) (map[int64]entity.CustomerRank, error) {
	return GroupReduce(orderTotals,
		func(total entity.OrderTotal) int64 { return total.CustomerID },
		func(acc entity.CustomerRank, total entity.OrderTotal, seen bool) (entity.CustomerRank, error) {
			if !seen {
				acc.CustomerID = total.CustomerID
				acc.CustomerName = total.CustomerName
			} else if acc.CustomerName != total.CustomerName {
				return acc, &domainerrors.ConsistencyError{Entity: "customer", Key: total.CustomerID, Field: "customer_name"}
			}

			acc.TotalSpent = acc.TotalSpent.Add(total.Total)
			acc.OrdersCount++

			return acc, nil
		},
	)
}

// ownedSpend is spendByCustomer restricted to totals whose owner is in customers.
// An order total owned by an unknown customer is a ReferenceError, and one whose
// customer name differs from the customer record is a ConsistencyError.
func ownedSpend(customers []entity.Customer, orderTotals []entity.OrderTotal) (map[int64]entity.CustomerRank, error) {
	customerByID, err := indexByID(customers, "customer", func(c entity.Customer) int64 { return c.ID })
	if err != nil {
		return nil, err
	}

	for _, total := range orderTotals {
		customer, ok := customerByID[total.CustomerID]
		if !ok {
			return nil, &domainerrors.ReferenceError{
				Entity:   "customer",
				Key:      total.CustomerID,
				Referrer: fmt.Sprintf("order %d", total.OrderID),
			}
		}
		if customer.Name != total.CustomerName {
			return nil, &domainerrors.ConsistencyError{Entity: "customer", Key: customer.ID, Field: "customer_name"}
		}
	}

	return spendByCustomer(orderTotals)
}
