package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/syssam/plectrum"
	"github.com/syssam/plectrum/compiler/gen"
	"github.com/syssam/plectrum/compiler/load"
	"github.com/syssam/plectrum/dialect"
	"github.com/syssam/plectrum/dialect/sql"
)

// result is the outcome of checking one enum.
type result struct {
	Enum  string
	Table string
	Rows  int
	Err   error
}

func (c *cli) check(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var (
		driver  = fs.String("driver", envOr(c.getenv, envDriver, dialect.SQLite), "database dialect: sqlite, mysql or postgres (env "+envDriver+")")
		dsn     = fs.String("dsn", c.getenv(envDSN), "data source name (env "+envDSN+")")
		only    = fs.String("enum", "", "check a single enum")
		slow    = fs.Duration("slow", time.Second, "log queries slower than this")
		verbose = fs.Bool("v", false, "verbose logging, including every query")
	)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if *dsn == "" {
		return usageError{"missing -dsn (or " + envDSN + ")"}
	}
	if !dialect.Valid(*driver) {
		return usageError{"unsupported driver " + *driver}
	}
	c.setupLogger(*verbose)

	f, err := load.ReadFile(path)
	if err != nil {
		return err
	}
	g, err := f.Graph()
	if err != nil {
		return err
	}
	types := g.Nodes
	if *only != "" {
		t, ok := g.Type(*only)
		if !ok {
			return usageError{"unknown enum " + *only}
		}
		types = []*gen.Type{t}
	}

	c.log.Debug("connecting", zap.String("driver", *driver), zap.String("dsn", redactDSN(*driver, *dsn)))
	db, err := sql.Open(*driver, *dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	stats := sql.NewStatsDriver(db, sql.WithSlowThreshold(*slow), sql.WithSlowQueryLogger(c.log))
	var drv dialect.Driver = stats
	if *verbose {
		drv = sql.NewDebugDriver(stats, sql.DebugWithLogger(c.log))
	}

	results := checkTypes(ctx, drv, types)
	c.log.Debug("queries", zap.Stringer("stats", stats.QueryStats().Stats()))
	r := newReporter(c.stdout)
	failed := r.report(results)
	if failed > 0 {
		return mismatchError{n: failed}
	}
	return nil
}

// checkTypes loads the table of every enum and reconciles it with the
// labels of the enum. Ids are read as strings, so every id type is supported.
func checkTypes(ctx context.Context, drv dialect.Driver, types []*gen.Type) []result {
	results := make([]result, 0, len(types))
	for _, t := range types {
		res := result{Enum: t.Name, Table: t.Table()}
		rows, err := sql.NewSource[string](drv, t.Table()).Load(ctx)
		if err != nil {
			res.Err = plectrum.NewDataSourceError(err)
		} else {
			res.Rows = len(rows)
			res.Err = plectrum.Reconcile(t.Name, t.Values(), rows)
		}
		results = append(results, res)
	}
	return results
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
