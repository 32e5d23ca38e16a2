package plectrum

import "context"

// Enum is implemented by a closed enumeration E whose variants are bound to
// string labels. FromValue, Lookup and Values do not depend on their
// receiver; callers invoke them on the zero value of E.
type Enum[E any] interface {
	// Value returns the label bound to the variant.
	Value() string
	// FromValue returns the variant bound to label. It panics with an
	// *UnknownLabelError if no variant is bound to label, so it must only
	// be used with labels taken from Values.
	FromValue(label string) E
	// Lookup is the fallible form of FromValue.
	Lookup(label string) (E, bool)
	// Values returns every bound label, one per variant.
	Values() []string
}

// DataSource loads an external {id: label} table.
type DataSource[ID comparable] interface {
	Load(ctx context.Context) (map[ID]string, error)
}

// DataSourceFunc adapts a function to the DataSource interface.
type DataSourceFunc[ID comparable] func(ctx context.Context) (map[ID]string, error)

// Load calls f(ctx).
func (f DataSourceFunc[ID]) Load(ctx context.Context) (map[ID]string, error) {
	return f(ctx)
}

// Static is an in-memory DataSource.
type Static[ID comparable] map[ID]string

// Load returns a copy of the table.
func (s Static[ID]) Load(ctx context.Context) (map[ID]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := make(map[ID]string, len(s))
	for id, label := range s {
		rows[id] = label
	}
	return rows, nil
}
