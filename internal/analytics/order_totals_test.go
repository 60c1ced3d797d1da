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

func TestOrderTotals_SampleDataset(t *testing.T) {
	totals := mustOrderTotals(t, sampleDataset())

	require.Len(t, totals, 6)

	want := map[int64]string{
		1: "128500",
		2: "57000",
		3: "19250",
		4: "28600",
		5: "43000",
		6: "6000",
	}
	for _, total := range totals {
		assertDecimal(t, want[total.OrderID], total.Total, "order %d", total.OrderID)
	}

	// ascending order date
	ids := make([]int64, 0, len(totals))
	for _, total := range totals {
		ids = append(ids, total.OrderID)
	}
	assert.Equal(t, []int64{1, 3, 5, 2, 4, 6}, ids)
	assert.Equal(t, "Global Dynamics", totals[1].CustomerName)
	assert.Equal(t, int64(2), totals[1].CustomerID)
}

func TestOrderTotals_SameDateTieBreaksByOrderID(t *testing.T) {
	ds := sampleDataset()
	for i := range ds.Orders {
		ds.Orders[i].Date = day(2024, 5, 1)
	}

	totals := mustOrderTotals(t, ds)

	for i := 1; i < len(totals); i++ {
		assert.Less(t, totals[i-1].OrderID, totals[i].OrderID)
	}
}

func TestOrderTotals_Conservation(t *testing.T) {
	ds := sampleDataset()
	ds.Products[2].Price = price("349.95")
	ds.Products[5].Price = price("599.99")

	lines := mustFlatten(t, ds)
	totals, err := OrderTotals(lines)
	require.NoError(t, err)

	lineSum := decimal.Zero
	for _, line := range lines {
		lineSum = lineSum.Add(line.LineTotal)
	}

	orderSum := decimal.Zero
	for _, total := range totals {
		orderSum = orderSum.Add(total.Total)
	}

	assert.True(t, lineSum.Equal(orderSum), "line sum %s, order sum %s", lineSum, orderSum)
}

func TestOrderTotals_ConflictingGroupFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(line *entity.LineItem)
		wantField string
	}{
		{name: "customer id", mutate: func(line *entity.LineItem) { line.CustomerID = 4 }, wantField: "customer_id"},
		{name: "customer name", mutate: func(line *entity.LineItem) { line.CustomerName = "Acme Inc" }, wantField: "customer_name"},
		{name: "order date", mutate: func(line *entity.LineItem) { line.OrderDate = day(2024, 6, 1) }, wantField: "order_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := mustFlatten(t, sampleDataset())
			tt.mutate(&lines[1]) // second line of order 1

			totals, err := OrderTotals(lines)
			assert.Nil(t, totals)

			var consErr *domainerrors.ConsistencyError
			require.True(t, errors.As(err, &consErr))
			assert.Equal(t, "order", consErr.Entity)
			assert.Equal(t, int64(1), consErr.Key)
			assert.Equal(t, tt.wantField, consErr.Field)
		})
	}
}

func TestOrderTotals_EmptyInput(t *testing.T) {
	totals, err := OrderTotals(nil)
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)
}
