package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/plectrum"
)

// SchemaFile is the name of the SQL file written by FeatureSchema.
const SchemaFile = "schema.sql"

// Import paths referenced by the generated code.
const (
	plectrumPkg = "github.com/syssam/plectrum"
	dialectPkg  = "github.com/syssam/plectrum/dialect"
	sqlPkg      = "github.com/syssam/plectrum/dialect/sql"
	uuidPkg     = "github.com/google/uuid"
	graphqlPkg  = "github.com/99designs/gqlgen/graphql"
)

// JenniferGenerator generates the enum package with Jennifer.
//
// Every enum gets a <name>_enum.go file. The sql/source, sql/schema and
// graphql features add a <name>_source.go file, a schema.sql file and a
// <name>.graphql file respectively.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
}

// NewJenniferGenerator creates a new Jennifer-based generator.
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	gen := &JenniferGenerator{
		graph:   g,
		workers: g.Workers,
		outDir:  outDir,
		pkg:     g.PackageName(),
	}
	if gen.workers <= 0 {
		gen.workers = 1
	}
	if g.Package == "" && outDir != "" {
		if abs, err := filepath.Abs(outDir); err == nil {
			gen.pkg = filepath.Base(abs)
		}
	}
	return gen
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// Graph returns the schema graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// Generate writes all files in parallel and removes the files of the
// features that are disabled.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("write", g.outDir, "create output directory", err)
	}
	source := g.featureEnabled(FeatureSQLSource)
	gql := g.featureEnabled(FeatureGraphQL)

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, t := range g.graph.Nodes {
		errg.Go(func() error {
			return g.writeGo(ctx, "enum", t.File(), g.genEnum(t, gql))
		})
		if source {
			errg.Go(func() error {
				return g.writeGo(ctx, "source", t.SourceFile(), g.genSource(t))
			})
		}
		if gql {
			errg.Go(func() error {
				b, err := g.genGraphQL(t)
				if err != nil {
					return NewGenerationError("graphql", t.GraphQLFile(), "render schema", err)
				}
				return g.writeRaw(ctx, t.GraphQLFile(), b)
			})
		}
	}
	if g.featureEnabled(FeatureSchema) {
		errg.Go(func() error {
			b, err := g.genSchema(ctx)
			if err != nil {
				return NewGenerationError("schema", SchemaFile, "plan lookup tables", err)
			}
			return g.writeRaw(ctx, SchemaFile, b)
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	return g.cleanup()
}

// cleanup removes the files of disabled features left by a previous run.
func (g *JenniferGenerator) cleanup() error {
	cfg := *g.graph.Config
	cfg.Target = g.outDir
	graph := &Graph{Config: &cfg, Nodes: g.graph.Nodes}
	for _, f := range AllFeatures {
		if f.cleanup == nil || g.featureEnabled(f) {
			continue
		}
		if err := f.cleanup(graph); err != nil {
			return NewGenerationError("cleanup", "", "remove files of feature "+f.Name, err)
		}
	}
	return nil
}

func (g *JenniferGenerator) featureEnabled(f Feature) bool {
	enabled, _ := g.graph.FeatureEnabled(f.Name)
	return enabled
}

// writeGo renders f, runs it through goimports in format-only mode, and
// writes it to the output directory.
func (g *JenniferGenerator) writeGo(ctx context.Context, phase, filename string, f *jen.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(phase, filename, "render", err)
	}
	path := filepath.Join(g.outDir, filename)
	src, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return NewGenerationError("format", filename, "format source", err)
	}
	return g.write(path, src)
}

// writeRaw writes a non-Go file as is.
func (g *JenniferGenerator) writeRaw(ctx context.Context, filename string, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.write(filepath.Join(g.outDir, filename), b)
}

func (g *JenniferGenerator) write(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return NewGenerationError("write", filepath.Base(path), "write file", err)
	}
	plectrum.Logger().Debug("file generated", zap.String("path", path), zap.Int("bytes", len(b)))
	return nil
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile() *jen.File {
	f := jen.NewFile(g.pkg)
	f.HeaderComment(g.graph.Header)
	f.ImportName(plectrumPkg, "plectrum")
	f.ImportName(dialectPkg, "dialect")
	f.ImportName(sqlPkg, "sql")
	f.ImportName(uuidPkg, "uuid")
	f.ImportName(graphqlPkg, "graphql")
	return f
}

// commenter is implemented by jen.File and jen.Group.
type commenter interface {
	Comment(string) *jen.Statement
}

// doc writes text as a sequence of line comments.
func doc(c commenter, text string) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		c.Comment(strings.TrimRight(line, " \t"))
	}
}

// idType returns the Go type of the external identifier.
func idType(t *Type) jen.Code {
	switch t.IDType {
	case "int":
		return jen.Int()
	case "int32":
		return jen.Int32()
	case "string":
		return jen.String()
	case "uuid":
		return jen.Qual(uuidPkg, "UUID")
	default:
		return jen.Int64()
	}
}

// Generate writes the graph into the target directory of its config.
func Generate(ctx context.Context, g *Graph) error {
	if g.Config == nil || g.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	return NewJenniferGenerator(g, g.Target).Generate(ctx)
}
