package dialect

import (
	"context"
	"fmt"
)

// Dialect names for external usages.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Names lists the supported dialects.
func Names() []string {
	return []string{SQLite, MySQL, Postgres}
}

// Valid reports whether name is a supported dialect.
func Valid(name string) bool {
	switch name {
	case SQLite, MySQL, Postgres:
		return true
	default:
		return false
	}
}

// ExecQuerier wraps the 2 database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for data sources.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps the Exec and Query operations in transaction.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// DriverName maps a dialect to the database/sql driver name registered by the
// driver packages this module links.
func DriverName(name string) (string, error) {
	switch name {
	case SQLite:
		return "sqlite", nil
	case MySQL:
		return "mysql", nil
	case Postgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("dialect: unsupported dialect %q", name)
	}
}
