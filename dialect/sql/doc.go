// Package sql wraps database/sql with the dialect.Driver interface and
// provides Source, a plectrum.DataSource reading an {id: label} lookup table.
//
//	drv, err := sql.Open(dialect.SQLite, "file:todo.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := plectrum.Load[int64, todo.ItemState](ctx, sql.NewSource[int64](drv, "item_states"))
//
// Table and column names are validated and quoted for the driver's dialect,
// so they are never interpolated into statements verbatim.
//
// # Debugging
//
// NewDebugDriver logs every statement through zap, and NewStatsDriver counts
// statements and reports slow ones.
package sql
