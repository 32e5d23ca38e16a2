package gen

import (
	"context"
	"fmt"
	"strings"

	sqlschema "github.com/syssam/plectrum/dialect/sql/schema"
)

// LookupTable returns the lookup table of t in the given dialect.
func (t *Type) LookupTable(dialect string) *sqlschema.Lookup {
	return &sqlschema.Lookup{
		Name:    t.Table(),
		IDType:  t.IDType,
		Dialect: dialect,
		Labels:  t.Values(),
	}
}

// SchemaSQL returns the script creating and seeding the lookup tables of
// all enums in the configured dialect.
func (g *Graph) SchemaSQL(ctx context.Context) (string, error) {
	var b strings.Builder
	for i, t := range g.Nodes {
		plan, err := t.LookupTable(g.Dialect).Plan(ctx)
		if err != nil {
			return "", fmt.Errorf("enum %s: %w", t.Name, err)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "-- %s\n", t.Name)
		b.WriteString(plan.String())
	}
	return b.String(), nil
}

// genSchema renders the schema.sql file.
func (g *JenniferGenerator) genSchema(ctx context.Context) ([]byte, error) {
	script, err := g.graph.SchemaSQL(ctx)
	if err != nil {
		return nil, err
	}
	return []byte("-- " + g.graph.Header + "\n\n" + script), nil
}
