package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/syssam/plectrum/compiler/gen"
	"github.com/syssam/plectrum/compiler/load"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (c *cli) gen(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var (
		target   = fs.String("target", "", "output directory (default: target of the file, or its directory)")
		features = fs.String("features", "", "comma separated features enabled on top of the file's")
		watch    = fs.Bool("watch", false, "regenerate when the definitions file changes")
		dump     = fs.Bool("dump", false, "print the bound enums")
		verbose  = fs.Bool("v", false, "verbose logging")
	)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	c.setupLogger(*verbose)
	opts := []gen.Option{}
	if *features != "" {
		opts = append(opts, gen.WithFeatureNames(splitList(*features)...))
	}
	generate := func() error {
		g, err := c.generate(ctx, path, *target, opts)
		if err != nil {
			return err
		}
		if *dump {
			dumpConfig.Fdump(c.stdout, g.Nodes)
		}
		fmt.Fprintf(c.stdout, "generated %d enum(s) in %s\n", len(g.Nodes), g.Target)
		return nil
	}
	if err := generate(); err != nil {
		if !*watch {
			return err
		}
		c.log.Error("generate", zap.Error(err))
	}
	if !*watch {
		return nil
	}
	return c.watch(ctx, path, generate)
}

// generate loads the definitions file at path and writes the enum package.
func (c *cli) generate(ctx context.Context, path, target string, opts []gen.Option) (*gen.Graph, error) {
	f, err := load.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch {
	case target != "":
	case f.Target != "":
		target = filepath.Join(filepath.Dir(path), f.Target)
	default:
		target = filepath.Dir(path)
	}
	g, err := f.Graph(append(opts, gen.WithTarget(target))...)
	if err != nil {
		return nil, err
	}
	if err := gen.Generate(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// watch calls fn every time the file at path is written, until ctx is done.
// The parent directory is watched so that editors replacing the file are
// handled too.
func (c *cli) watch(ctx context.Context, path string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	c.log.Info("watching", zap.String("path", path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if name, _ := filepath.Abs(ev.Name); name != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := fn(); err != nil {
				c.log.Error("generate", zap.String("path", path), zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				c.log.Warn("watch events dropped", zap.Error(err))
				continue
			}
			return err
		}
	}
}
