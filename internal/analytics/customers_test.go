package analytics

import (
	"testing"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCustomers_SampleTopThree(t *testing.T) {
	top, err := TopCustomers(mustOrderTotals(t, sampleDataset()), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "Acme Corp", top[0].CustomerName)
	assertDecimal(t, "185500", top[0].TotalSpent)
	assert.Equal(t, 2, top[0].OrdersCount)

	assert.Equal(t, "Blue Ocean Ltd", top[1].CustomerName)
	assertDecimal(t, "43000", top[1].TotalSpent)
	assert.Equal(t, 1, top[1].OrdersCount)

	assert.Equal(t, "Innotech", top[2].CustomerName)
	assertDecimal(t, "28600", top[2].TotalSpent)
	assert.Equal(t, 1, top[2].OrdersCount)
}

func TestTopCustomers_LengthIsMinOfNAndCustomers(t *testing.T) {
	totals := mustOrderTotals(t, sampleDataset())

	for n := 0; n <= 6; n++ {
		top, err := TopCustomers(totals, n)
		require.NoError(t, err)
		assert.Len(t, top, min(n, 4), "n=%d", n)

		for i := 1; i < len(top); i++ {
			assert.LessOrEqual(t, compareCustomerRanks(top[i-1], top[i]), 0)
			assert.True(t, top[i-1].TotalSpent.GreaterThanOrEqual(top[i].TotalSpent))
		}
	}
}

func TestTopCustomers_NegativeNIsEmpty(t *testing.T) {
	top, err := TopCustomers(mustOrderTotals(t, sampleDataset()), -1)
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestTopCustomers_TieBrokenByName(t *testing.T) {
	totals := []entity.OrderTotal{
		{OrderID: 1, CustomerID: 10, CustomerName: "Zeta", Total: price("100")},
		{OrderID: 2, CustomerID: 11, CustomerName: "Alpha", Total: price("100")},
		{OrderID: 3, CustomerID: 12, CustomerName: "Mid", Total: price("100.00")},
	}

	top, err := TopCustomers(totals, 3)
	require.NoError(t, err)

	names := []string{top[0].CustomerName, top[1].CustomerName, top[2].CustomerName}
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
}

func TestTopCustomers_ConflictingName(t *testing.T) {
	totals := []entity.OrderTotal{
		{OrderID: 1, CustomerID: 10, CustomerName: "Zeta", Total: price("100")},
		{OrderID: 2, CustomerID: 10, CustomerName: "Zeta Ltd", Total: price("50")},
	}

	_, err := TopCustomers(totals, 1)

	var consErr *domainerrors.ConsistencyError
	require.True(t, errors.As(err, &consErr))
	assert.Equal(t, int64(10), consErr.Key)
}

func TestCustomerReports_SampleAverages(t *testing.T) {
	ds := sampleDataset()

	reports, err := CustomerReports(ds.Customers, mustOrderTotals(t, ds))
	require.NoError(t, err)
	require.Len(t, reports, 4)

	wantOrder := []string{"Acme Corp", "Blue Ocean Ltd", "Innotech", "Global Dynamics"}
	wantAverage := []string{"92750", "43000", "28600", "12625"}
	for i, report := range reports {
		assert.Equal(t, wantOrder[i], report.CustomerName)
		assertDecimal(t, wantAverage[i], report.AverageOrderValue, report.CustomerName)
	}

	assert.Equal(t, "Cape Town", reports[3].City)
	assertDecimal(t, "25250", reports[3].TotalSpent)
	assert.Equal(t, 2, reports[3].OrdersCount)
}

func TestCustomerReports_CustomerWithoutOrders(t *testing.T) {
	ds := sampleDataset()
	ds.Customers = append(ds.Customers, entity.Customer{ID: 5, Name: "Dormant Co", City: "Pretoria"})

	reports, err := CustomerReports(ds.Customers, mustOrderTotals(t, ds))
	require.NoError(t, err)
	require.Len(t, reports, 5)

	last := reports[4]
	assert.Equal(t, "Dormant Co", last.CustomerName)
	assert.Equal(t, 0, last.OrdersCount)
	assert.True(t, last.TotalSpent.IsZero())
	assert.True(t, last.AverageOrderValue.IsZero())
}

func TestCustomerReports_AverageIdentity(t *testing.T) {
	ds := sampleDataset()
	ds.Products[2].Price = price("333.33")
	ds.Products[3].Price = price("1199.99")

	reports, err := CustomerReports(ds.Customers, mustOrderTotals(t, ds))
	require.NoError(t, err)

	tolerance := price("0.01")
	for _, report := range reports {
		if report.OrdersCount == 0 {
			assert.True(t, report.AverageOrderValue.IsZero())

			continue
		}

		product := report.AverageOrderValue.Mul(decimal.NewFromInt(int64(report.OrdersCount)))
		diff := product.Sub(report.TotalSpent).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance.Mul(decimal.NewFromInt(int64(report.OrdersCount)))),
			"%s: %s × %d vs %s", report.CustomerName, report.AverageOrderValue, report.OrdersCount, report.TotalSpent)
	}
}

func TestCustomerReports_UnknownOwner(t *testing.T) {
	ds := sampleDataset()
	totals := mustOrderTotals(t, ds)

	_, err := CustomerReports(ds.Customers[:3], totals) // Blue Ocean Ltd removed

	var refErr *domainerrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "customer", refErr.Entity)
	assert.Equal(t, int64(4), refErr.Key)
	assert.Equal(t, "order 5", refErr.Referrer)
}

func TestCustomerReports_EmptyInput(t *testing.T) {
	reports, err := CustomerReports(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}
