package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	N          int    `query:"n" validate:"gte=0"`
	MinRevenue string `query:"minRevenue" validate:"omitempty,numeric"`
	Label      string `json:"label" validate:"omitempty,max=3"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{N: 3, MinRevenue: "100.50"}))

	err := v.Validate(&sampleRequest{N: -1, MinRevenue: "lots"})
	require.Error(t, err)
	assert.Equal(t, "n failed gte=0; minRevenue failed numeric", err.Error())

	err = v.Validate(&sampleRequest{Label: "long"})
	require.Error(t, err)
	assert.Equal(t, "label failed max=3", err.Error())
}

func TestRequestValidator_NotAStruct(t *testing.T) {
	err := New().Validate(42)
	assert.Error(t, err)
}
