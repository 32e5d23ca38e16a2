package gen

import (
	"fmt"
	"path"
	"path/filepath"
	"runtime"

	"github.com/syssam/plectrum/dialect"
	sqlschema "github.com/syssam/plectrum/dialect/sql/schema"
)

// DefaultHeader is the first line of every generated Go file.
const DefaultHeader = "Code generated by plectrum. DO NOT EDIT."

// Config holds the global codegen configuration shared by all enums.
type Config struct {
	// Package is the import path of the generated package.
	// For example: "github.com/org/project/colors".
	Package string

	// Target is the output directory of the generated files.
	Target string

	// Header is the comment written at the top of every generated Go file.
	Header string

	// Workers bounds the number of files written in parallel.
	// Defaults to GOMAXPROCS.
	Workers int

	// IDType is the default external id type of the enums that do not set
	// their own. One of "int", "int32", "int64", "string" or "uuid".
	IDType string

	// Dialect is the SQL dialect of the generated schema file.
	Dialect string

	// Features defines a list of additional features to add to the codegen phase.
	Features []Feature
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the template engine as follows:
//
//	if enabled, _ := cfg.FeatureEnabled("graphql"); enabled {
//	    ...
//	}
func (c Config) FeatureEnabled(name string) (bool, error) {
	f, ok := FeatureByName(name)
	if !ok {
		return false, fmt.Errorf("unexpected feature name %q", name)
	}
	for _, e := range c.Features {
		if e.Name == name {
			return true, nil
		}
	}
	return f.Default, nil
}

// PackageName returns the name of the generated package: the last element
// of Package, or of Target when Package is empty.
func (c Config) PackageName() string {
	if c.Package != "" {
		return path.Base(c.Package)
	}
	if c.Target != "" {
		if abs, err := filepath.Abs(c.Target); err == nil {
			return filepath.Base(abs)
		}
	}
	return "enums"
}

// defaults fills the unset fields of c.
func (c *Config) defaults() {
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.IDType == "" {
		c.IDType = sqlschema.IDInt64
	}
	if c.Dialect == "" {
		c.Dialect = dialect.SQLite
	}
}
