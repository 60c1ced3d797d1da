package errors

import (
	"fmt"
	"net/http"
)

// ReferenceError reports a foreign key that does not resolve,
// e.g. an order item pointing at a product that is not in the snapshot.
type ReferenceError struct {
	Entity   string // Entity that could not be found, e.g. "product"
	Key      int64  // Missing identifier
	Referrer string // Row holding the reference, e.g. "order_item #3"
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s references missing %s %d", e.Referrer, e.Entity, e.Key)
}

func (e *ReferenceError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ReferenceError) ErrorCode() string {
	return "DANGLING_REFERENCE"
}

func (e *ReferenceError) Message() string {
	return "dataset contains a dangling reference"
}

func (e *ReferenceError) Details() string {
	return e.Error()
}

// ConsistencyError reports rows of one group that disagree on a field
// which must be identical within the group, or a duplicated primary key.
type ConsistencyError struct {
	Entity string // Grouped entity, e.g. "order"
	Key    int64  // Group key
	Field  string // Disagreeing field
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s %d has conflicting %s", e.Entity, e.Key, e.Field)
}

func (e *ConsistencyError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ConsistencyError) ErrorCode() string {
	return "INCONSISTENT_GROUP"
}

func (e *ConsistencyError) Message() string {
	return "dataset contains inconsistent records"
}

func (e *ConsistencyError) Details() string {
	return e.Error()
}

// ValidationError reports a base record that violates a numeric or
// required-field rule at ingestion, e.g. a negative price.
type ValidationError struct {
	Entity string
	Key    int64
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: invalid %s: %s", e.Entity, e.Key, e.Field, e.Reason)
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) ErrorCode() string {
	return "INVALID_DATASET"
}

func (e *ValidationError) Message() string {
	return "dataset failed validation"
}

func (e *ValidationError) Details() string {
	return e.Error()
}
