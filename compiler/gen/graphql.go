package gen

import (
	"bytes"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// genGraphQL renders the GraphQL enum definition of t. Enum values are
// named in UPPER_SNAKE_CASE and described by their labels.
func (g *JenniferGenerator) genGraphQL(t *Type) ([]byte, error) {
	def := &ast.Definition{
		Kind:        ast.Enum,
		Name:        t.Name,
		Description: t.Comment,
	}
	seen := make(map[string]string, len(t.Variants))
	for _, v := range t.Variants {
		if prev, ok := seen[v.GraphQL]; ok {
			return nil, fmt.Errorf("variants %s and %s share the GraphQL name %s", prev, v.Name, v.GraphQL)
		}
		seen[v.GraphQL] = v.Name
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        v.GraphQL,
			Description: v.Label,
		})
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", g.graph.Header)
	formatter.NewFormatter(&buf).FormatSchemaDocument(&ast.SchemaDocument{
		Definitions: ast.DefinitionList{def},
	})
	return buf.Bytes(), nil
}
