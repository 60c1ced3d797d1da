package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesPredefined(t *testing.T) {
	err := ErrValidationFailed.WithDetails("n must be between 0 and 100")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrDatasetUnavailable))
	assert.Equal(t, "invalid request parameters: n must be between 0 and 100", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestBaseError_WithCauseKeepsChain(t *testing.T) {
	cause := errors.Wrap(context.DeadlineExceeded, "begin snapshot")
	err := errors.WithStack(ErrDatasetUnavailable.WithCause(cause))

	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "begin snapshot: context deadline exceeded", appErr.Details())
	assert.Nil(t, ErrDatasetUnavailable.Unwrap())
}

func TestDatasetErrors_AreUnprocessable(t *testing.T) {
	tests := []struct {
		name     string
		err      AppError
		wantCode string
		wantText string
	}{
		{
			name:     "reference",
			err:      &ReferenceError{Entity: "product", Key: 9, Referrer: "order_item #1"},
			wantCode: "DANGLING_REFERENCE",
			wantText: "order_item #1 references missing product 9",
		},
		{
			name:     "consistency",
			err:      &ConsistencyError{Entity: "order", Key: 2, Field: "customer_id"},
			wantCode: "INCONSISTENT_GROUP",
			wantText: "order 2 has conflicting customer_id",
		},
		{
			name:     "validation",
			err:      &ValidationError{Entity: "product", Key: 1, Field: "price", Reason: "nonneg_decimal"},
			wantCode: "INVALID_DATASET",
			wantText: "product 1: invalid price: nonneg_decimal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnprocessableEntity, tt.err.HTTPCode())
			assert.Equal(t, tt.wantCode, tt.err.ErrorCode())
			assert.Equal(t, tt.wantText, tt.err.Error())
			assert.Equal(t, tt.wantText, tt.err.Details())
		})
	}
}
