package analytics

import (
	domainerrors "insight/internal/domain/errors"
)

// Reducer folds row into the accumulator of its group. seen is false for the
// first row of a group, in which case acc is the zero value.
type Reducer[T, A any] func(acc A, row T, seen bool) (A, error)

// GroupReduce groups rows by key and folds every group with reduce.
// The first reducer error aborts the grouping.
func GroupReduce[T any, K comparable, A any](rows []T, key func(T) K, reduce Reducer[T, A]) (map[K]A, error) {
	groups := make(map[K]A)

	for _, row := range rows {
		k := key(row)
		acc, seen := groups[k]

		next, err := reduce(acc, row, seen)
		if err != nil {
			return nil, err
		}

		groups[k] = next
	}

	return groups, nil
}

// collect returns the accumulators of groups in unspecified order, never nil.
func collect[K comparable, A any](groups map[K]A) []A {
	out := make([]A, 0, len(groups))
	for _, acc := range groups {
		out = append(out, acc)
	}

	return out
}

// indexByID builds a primary-key index. A repeated key is a ConsistencyError.
func indexByID[T any](rows []T, entityName string, id func(T) int64) (map[int64]T, error) {
	index := make(map[int64]T, len(rows))

	for _, row := range rows {
		key := id(row)
		if _, dup := index[key]; dup {
			return nil, &domainerrors.ConsistencyError{Entity: entityName, Key: key, Field: "id"}
		}
		index[key] = row
	}

	return index, nil
}
