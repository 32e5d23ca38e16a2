package plectrum

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// Mapping is a validated bidirectional lookup between external ids, labels
// and the variants of E. It is built only by Load and never modified
// afterwards, so concurrent reads need no synchronization.
type Mapping[ID comparable, E Enum[E]] struct {
	rows map[ID]string
}

// Load reads the table of src and reconciles it with the labels bound to E.
//
// A failure of src is returned as a *DataSourceError. Otherwise labels in the
// table that E does not define are reported first, as a
// *NotDefinedInCodeError, and labels of E that have no row second, as a
// *MissingFromDataError. No Mapping is returned on error.
//
// src is called exactly once and is not retained. Load does not retry and
// imposes no deadline beyond ctx.
func Load[ID comparable, E Enum[E]](ctx context.Context, src DataSource[ID]) (*Mapping[ID, E], error) {
	var zero E
	name := enumName[E]()
	data, err := src.Load(ctx)
	if err != nil {
		Logger().Warn("data source failed", zap.String("enum", name), zap.Error(err))
		if IsDataSource(err) {
			return nil, err
		}
		return nil, NewDataSourceError(err)
	}
	rows := make(map[ID]string, len(data))
	for id, label := range data {
		rows[id] = label
	}
	if err := Reconcile(name, zero.Values(), rows); err != nil {
		Logger().Warn("enum out of sync with data", zap.String("enum", name), zap.Error(err))
		return nil, err
	}
	Logger().Debug("mapping loaded", zap.String("enum", name), zap.Int("rows", len(rows)))
	return &Mapping[ID, E]{rows: rows}, nil
}

// MustLoad is like Load but panics on error.
func MustLoad[ID comparable, E Enum[E]](ctx context.Context, src DataSource[ID]) *Mapping[ID, E] {
	m, err := Load[ID, E](ctx, src)
	if err != nil {
		panic(err)
	}
	return m
}

// Reconcile checks that the labels of data are exactly the labels of code.
// enum names the enumeration in returned errors. Duplicate labels within
// data are not an error.
func Reconcile[ID comparable](enum string, code []string, data map[ID]string) error {
	defined := make(map[string]struct{}, len(code))
	for _, label := range code {
		defined[label] = struct{}{}
	}
	present := make(map[string]struct{}, len(data))
	var unknown []string
	for _, label := range data {
		if _, ok := present[label]; ok {
			continue
		}
		present[label] = struct{}{}
		if _, ok := defined[label]; !ok {
			unknown = append(unknown, label)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return &NotDefinedInCodeError{Enum: enum, Labels: unknown}
	}
	var missing []string
	for label := range defined {
		if _, ok := present[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return &MissingFromDataError{Enum: enum, Labels: missing}
	}
	return nil
}

// ByID returns the variant stored under id.
func (m *Mapping[ID, E]) ByID(id ID) (E, bool) {
	var zero E
	label, ok := m.rows[id]
	if !ok {
		return zero, false
	}
	return zero.Lookup(label)
}

// ByValue returns the variant bound to label if the table holds a row for it.
func (m *Mapping[ID, E]) ByValue(label string) (E, bool) {
	var zero E
	for _, l := range m.rows {
		if l == label {
			return zero.Lookup(l)
		}
	}
	return zero, false
}

// GetID returns the id of the row holding the label of v. If several rows
// hold the same label, any one of their ids is returned.
func (m *Mapping[ID, E]) GetID(v E) (ID, bool) {
	label := v.Value()
	for id, l := range m.rows {
		if l == label {
			return id, true
		}
	}
	var zero ID
	return zero, false
}

// Len returns the number of rows.
func (m *Mapping[ID, E]) Len() int {
	return len(m.rows)
}

// IDs returns the ids of all rows in unspecified order.
func (m *Mapping[ID, E]) IDs() []ID {
	ids := make([]ID, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	return ids
}

// Rows returns a copy of the {id: label} table.
func (m *Mapping[ID, E]) Rows() map[ID]string {
	rows := make(map[ID]string, len(m.rows))
	for id, label := range m.rows {
		rows[id] = label
	}
	return rows
}

// All iterates over the rows as (id, variant) pairs in unspecified order.
func (m *Mapping[ID, E]) All() iter.Seq2[ID, E] {
	return func(yield func(ID, E) bool) {
		for id := range m.rows {
			v, ok := m.ByID(id)
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// enumName returns the unqualified type name of E, as it appears in the
// enums file.
func enumName[E any]() string {
	if name := reflect.TypeFor[E]().Name(); name != "" {
		return name
	}
	var zero E
	return fmt.Sprintf("%T", zero)
}
