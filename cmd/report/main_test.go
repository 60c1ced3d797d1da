package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDir = "../../data/sample"

func runReport(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), err
}

func TestRun_TopCustomers(t *testing.T) {
	out, err := runReport(t, "top-customers", "-data", sampleDir, "-n", "2")
	require.NoError(t, err)

	var ranks []entity.CustomerRank
	require.NoError(t, json.Unmarshal([]byte(out), &ranks))
	require.Len(t, ranks, 2)
	assert.Equal(t, "Acme Corp", ranks[0].CustomerName)
	assert.Equal(t, "Blue Ocean Ltd", ranks[1].CustomerName)
}

func TestRun_Customers(t *testing.T) {
	out, err := runReport(t, "customers", "-data", sampleDir, "-min-revenue", "25000", "-city", "Johannesburg")
	require.NoError(t, err)

	var reports []entity.CustomerReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "Acme Corp", reports[0].CustomerName)
	assert.Equal(t, "Innotech", reports[1].CustomerName)
}

func TestRun_Summary(t *testing.T) {
	out, err := runReport(t, "summary", "-data", sampleDir)
	require.NoError(t, err)

	var summary entity.SalesSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Len(t, summary.OrderTotals, 6)
	assert.Len(t, summary.TopCustomers, 4)
	assert.Len(t, summary.CitySummary, 3)
}

func TestRun_EveryCommand(t *testing.T) {
	for _, name := range []string{"orders", "products", "cities"} {
		t.Run(name, func(t *testing.T) {
			out, err := runReport(t, name, "-data", sampleDir)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(out)))
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := runReport(t)
	assert.Error(t, err)

	_, err = runReport(t, "forecast")
	assert.ErrorContains(t, err, "unknown command")

	_, err = runReport(t, "customers", "-data", sampleDir, "-min-revenue", "lots")
	assert.ErrorContains(t, err, "invalid -min-revenue")

	_, err = runReport(t, "top-customers", "-data", sampleDir, "-n", "-3")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = runReport(t, "orders", "-data", t.TempDir())
	assert.True(t, errors.Is(err, domainerrors.ErrDatasetUnavailable))
}
