// Package dialect defines the driver abstraction used to read lookup tables.
//
// # Supported Dialects
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The dialect/sql package implements Driver on top of database/sql and
// provides the SQL-backed plectrum.DataSource.
//
// # Sub-packages
//
//   - dialect/sql: driver wrapper, debug and stats drivers, lookup-table source
//   - dialect/sql/schema: DDL and seed statements for lookup tables
package dialect
