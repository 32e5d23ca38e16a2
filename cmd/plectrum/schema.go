package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/syssam/plectrum/compiler/gen"
	"github.com/syssam/plectrum/compiler/load"
)

func (c *cli) schema(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	name := fs.String("dialect", "", "SQL dialect: sqlite, mysql or postgres (default: dialect of the file, or sqlite)")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	c.setupLogger(false)
	f, err := load.ReadFile(path)
	if err != nil {
		return err
	}
	var opts []gen.Option
	if *name != "" {
		opts = append(opts, gen.WithDialect(*name))
	}
	g, err := f.Graph(opts...)
	if err != nil {
		return err
	}
	script, err := g.SchemaSQL(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(c.stdout, script)
	return nil
}

// parseArgs parses the flags of a command and returns its single positional
// argument, the path of the definitions file.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", usageError{err.Error()}
	}
	if fs.NArg() != 1 {
		return "", usageError{"expected exactly one definitions file"}
	}
	return fs.Arg(0), nil
}

// splitList splits a comma separated flag value.
func splitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
