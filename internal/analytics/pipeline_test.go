package analytics

import (
	"sync"
	"testing"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SampleDataset(t *testing.T) {
	summary, err := Summarize(sampleDataset(), 2)
	require.NoError(t, err)

	assert.Len(t, summary.OrderTotals, 6)
	require.Len(t, summary.TopCustomers, 2)
	assert.Equal(t, "Acme Corp", summary.TopCustomers[0].CustomerName)
	assert.Equal(t, "Blue Ocean Ltd", summary.TopCustomers[1].CustomerName)
	assert.Len(t, summary.ProductPerformance, 6)
	assert.Len(t, summary.CitySummary, 3)
	assert.Len(t, summary.CustomerReports, 4)
}

func TestPrepare_StopsAtFirstFault(t *testing.T) {
	ds := sampleDataset()
	ds.OrderItems[2].ProductID = 77

	prepared, err := Prepare(ds)
	assert.Nil(t, prepared)

	var refErr *domainerrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, int64(77), refErr.Key)
}

func TestSummarize_ConcurrentReadersShareDataset(t *testing.T) {
	ds := sampleDataset()
	want, err := Summarize(ds, 3)
	require.NoError(t, err)

	const readers = 32
	results := make([]*entity.SalesSummary, readers)
	errs := make([]error, readers)

	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Summarize(ds, 3)
		}()
	}
	wg.Wait()

	for i := range readers {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
	assert.Equal(t, sampleDataset(), ds)
}
