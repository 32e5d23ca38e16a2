// Package dataloader resolves batches of lookup-table keys through a loaded
// plectrum.Mapping, in the shape expected by DataLoader implementations such
// as github.com/graph-gophers/dataloader/v7 or github.com/vikstrous/dataloadgen.
//
// # Basic Usage
//
// A GraphQL resolver turning the state ids of many rows into ItemState values
// in one round:
//
//	states, _ := todo.LoadItemStateMapping(ctx, drv)
//	batch := dataloader.BatchByID(states)
//	values, errs := batch(ctx, []uuid.UUID{a, b, c})
//
// Results have the same length and order as the requested keys. A key the
// mapping does not know yields the zero value and an error wrapping
// ErrNotFound at the same index.
package dataloader

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/plectrum"
)

// ErrNotFound is returned for a key that is not in the mapping.
var ErrNotFound = errors.New("dataloader: key not found")

// KeyFunc extracts a key from a value.
type KeyFunc[K comparable, V any] func(V) K

// BatchFunc loads a batch of values by their keys.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) ([]V, []error)

// resolve looks up every key with fn, in key order.
func resolve[K, V any](keys []K, fn func(K) (V, bool)) ([]V, []error) {
	result := make([]V, len(keys))
	errs := make([]error, len(keys))
	for i, key := range keys {
		if v, ok := fn(key); ok {
			result[i] = v
		} else {
			errs[i] = fmt.Errorf("%w: %v", ErrNotFound, key)
		}
	}
	return result, errs
}

// ByIDs returns the variants stored under ids.
func ByIDs[ID comparable, E plectrum.Enum[E]](m *plectrum.Mapping[ID, E], ids []ID) ([]E, []error) {
	return resolve(ids, m.ByID)
}

// ByValues returns the variants bound to labels that are present in the
// table of m.
func ByValues[ID comparable, E plectrum.Enum[E]](m *plectrum.Mapping[ID, E], labels []string) ([]E, []error) {
	return resolve(labels, m.ByValue)
}

// GetIDs returns the ids of values, the inverse of ByIDs.
func GetIDs[ID comparable, E plectrum.Enum[E]](m *plectrum.Mapping[ID, E], values []E) ([]ID, []error) {
	return resolve(values, func(v E) (ID, bool) { return m.GetID(v) })
}

// BatchByID returns a BatchFunc resolving ids through m. A canceled ctx
// fails every key of the batch.
func BatchByID[ID comparable, E plectrum.Enum[E]](m *plectrum.Mapping[ID, E]) BatchFunc[ID, E] {
	return func(ctx context.Context, ids []ID) ([]E, []error) {
		if err := ctx.Err(); err != nil {
			errs := make([]error, len(ids))
			for i := range errs {
				errs[i] = err
			}
			return make([]E, len(ids)), errs
		}
		return ByIDs(m, ids)
	}
}

// GroupByKey groups values by a key function.
//
// Example:
//
//	byState := GroupByKey(items, func(it *todo.Item) todo.ItemState { return it.State })
func GroupByKey[K comparable, V any](values []V, keyFn KeyFunc[K, V]) map[K][]V {
	result := make(map[K][]V)
	for _, v := range values {
		key := keyFn(v)
		result[key] = append(result[key], v)
	}
	return result
}

// OrderGroupsByKeys reorders grouped values to match the order of keys.
func OrderGroupsByKeys[K comparable, V any](keys []K, groups map[K][]V) [][]V {
	result := make([][]V, len(keys))
	for i, key := range keys {
		result[i] = groups[key]
	}
	return result
}

// ctxKey is the context key for storing mappings.
type ctxKey[T any] struct{}

// WithMapping injects a mapping into the context, keyed by its type, so that
// request handlers share the mapping loaded at startup.
func WithMapping[ID comparable, E plectrum.Enum[E]](ctx context.Context, m *plectrum.Mapping[ID, E]) context.Context {
	return context.WithValue(ctx, ctxKey[*plectrum.Mapping[ID, E]]{}, m)
}

// For extracts the mapping of the given type from context, or returns nil.
//
//	states := dataloader.For[uuid.UUID, todo.ItemState](ctx)
func For[ID comparable, E plectrum.Enum[E]](ctx context.Context) *plectrum.Mapping[ID, E] {
	m, _ := ctx.Value(ctxKey[*plectrum.Mapping[ID, E]]{}).(*plectrum.Mapping[ID, E])
	return m
}

// BatchResult represents the result of one key of a batch.
type BatchResult[V any] struct {
	Value V
	Error error
}

// Results converts separate value and error slices into BatchResult slice.
func Results[V any](values []V, errs []error) []BatchResult[V] {
	results := make([]BatchResult[V], len(values))
	for i := range values {
		var err error
		if i < len(errs) {
			err = errs[i]
		}
		results[i] = BatchResult[V]{Value: values[i], Error: err}
	}
	return results
}
