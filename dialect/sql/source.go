package sql

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/syssam/plectrum"
	"github.com/syssam/plectrum/dialect"
)

// Default column names of a lookup table.
const (
	DefaultIDColumn    = "id"
	DefaultLabelColumn = "label"
)

type sourceOptions struct {
	idColumn    string
	labelColumn string
}

// SourceOption configures a Source.
type SourceOption func(*sourceOptions)

// WithColumns overrides the id and label column names.
func WithColumns(id, label string) SourceOption {
	return func(o *sourceOptions) {
		if id != "" {
			o.idColumn = id
		}
		if label != "" {
			o.labelColumn = label
		}
	}
}

// Source is a plectrum.DataSource reading an {id: label} lookup table.
type Source[ID comparable] struct {
	drv   dialect.Driver
	table string
	opts  sourceOptions
}

var _ plectrum.DataSource[int64] = (*Source[int64])(nil)

// NewSource returns a Source reading table through drv.
func NewSource[ID comparable](drv dialect.Driver, table string, opts ...SourceOption) *Source[ID] {
	s := &Source[ID]{
		drv:   drv,
		table: table,
		opts: sourceOptions{
			idColumn:    DefaultIDColumn,
			labelColumn: DefaultLabelColumn,
		},
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Table returns the lookup table name.
func (s *Source[ID]) Table() string { return s.table }

// Query returns the SELECT statement issued by Load.
func (s *Source[ID]) Query() (string, error) {
	name := s.drv.Dialect()
	table, err := QuoteIdent(name, s.table)
	if err != nil {
		return "", err
	}
	id, err := QuoteIdent(name, s.opts.idColumn)
	if err != nil {
		return "", err
	}
	label, err := QuoteIdent(name, s.opts.labelColumn)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s, %s FROM %s", id, label, table), nil
}

// Load reads every row of the lookup table. When ids repeat, the last row wins.
func (s *Source[ID]) Load(ctx context.Context) (map[ID]string, error) {
	query, err := s.Query()
	if err != nil {
		return nil, err
	}
	rows := &Rows{}
	if err := s.drv.Query(ctx, query, []any{}, rows); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table, err)
	}
	defer rows.Close()
	out := make(map[ID]string)
	for rows.Next() {
		var (
			id    ID
			label string
		)
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("load %s: scan: %w", s.table, err)
		}
		out[id] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table, err)
	}
	plectrum.Logger().Debug("lookup table read",
		zap.String("table", s.table),
		zap.String("dialect", s.drv.Dialect()),
		zap.Int("rows", len(out)),
	)
	return out, nil
}
