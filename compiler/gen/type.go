package gen

import (
	"fmt"
	"go/token"

	"github.com/syssam/plectrum"
	"github.com/syssam/plectrum/casing"
	sqlschema "github.com/syssam/plectrum/dialect/sql/schema"
	"github.com/syssam/plectrum/schema"
)

type (
	// Type is an enumeration whose variants are bound to their labels.
	// A Type is immutable after Bind returns.
	Type struct {
		// Name is the Go type name.
		Name string
		// Comment is the type documentation.
		Comment string
		// Style derives the labels from the variant identifiers.
		Style casing.Style
		// IDType is the Go type of the external identifier.
		IDType string
		// Variants in declaration order.
		Variants []*Variant

		table   string
		byLabel map[string]*Variant
	}

	// Variant is a bound case of a Type.
	Variant struct {
		// Name is the variant identifier.
		Name string
		// Label is the string the variant is bound to.
		Label string
		// Comment is the constant documentation.
		Comment string
		// Const is the name of the generated Go constant.
		Const string
		// GraphQL is the name of the GraphQL enum value.
		GraphQL string
		// Ordinal is the 1-based position of the variant. Zero is never
		// a valid variant.
		Ordinal int
	}
)

// Bind validates the descriptor and binds every variant to its label.
//
// A descriptor is rejected when its name or a variant name is not a Go
// identifier, when it has no variants or duplicate variants, when a variant
// carries fields, when its rename_all token is unknown, or when two variants
// are bound to the same label.
func Bind(d *schema.Descriptor) (*Type, error) {
	if d == nil {
		return nil, NewSchemaError("", "", "nil descriptor", nil)
	}
	if d.Err != nil {
		return nil, NewSchemaError(d.Name, "", "invalid descriptor", d.Err)
	}
	if !token.IsIdentifier(d.Name) {
		return nil, NewSchemaError(d.Name, "", fmt.Sprintf("enum name %q is not a valid Go identifier", d.Name), nil)
	}
	if len(d.Variants) == 0 {
		return nil, NewSchemaError(d.Name, "", "enum has no variants", nil)
	}
	style, err := casing.ParseStyle(d.RenameAll)
	if d.RenameAll == "" {
		style, err = casing.None, nil
	}
	if err != nil {
		return nil, NewSchemaError(d.Name, "", "invalid rename_all", err)
	}
	if d.IDType != "" && !sqlschema.ValidIDType(d.IDType) {
		return nil, NewSchemaError(d.Name, "", fmt.Sprintf("unsupported id_type %q", d.IDType), nil)
	}
	t := &Type{
		Name:     d.Name,
		Comment:  d.Comment,
		Style:    style,
		IDType:   d.IDType,
		Variants: make([]*Variant, 0, len(d.Variants)),
		table:    d.Table,
		byLabel:  make(map[string]*Variant, len(d.Variants)),
	}
	names := make(map[string]struct{}, len(d.Variants))
	generated := t.generatedIdents()
	for i, v := range d.Variants {
		switch {
		case !token.IsIdentifier(v.Name):
			return nil, NewSchemaError(d.Name, v.Name, fmt.Sprintf("variant name %q is not a valid Go identifier", v.Name), nil)
		case !v.IsUnit():
			return nil, NewSchemaError(d.Name, v.Name, "data-bearing variants are not supported", nil)
		}
		if _, ok := names[v.Name]; ok {
			return nil, NewSchemaError(d.Name, v.Name, "duplicate variant", nil)
		}
		names[v.Name] = struct{}{}
		bound := &Variant{
			Name:    v.Name,
			Label:   style.Convert(v.Name),
			Comment: v.Comment,
			Const:   d.Name + v.Name,
			GraphQL: upperSnake(v.Name),
			Ordinal: i + 1,
		}
		if _, ok := generated[bound.Const]; ok {
			return nil, NewSchemaError(d.Name, v.Name, fmt.Sprintf("constant %s collides with a generated identifier", bound.Const), nil)
		}
		if bound.Label == "" {
			return nil, NewSchemaError(d.Name, v.Name, "variant is bound to an empty label", nil)
		}
		if prev, ok := t.byLabel[bound.Label]; ok {
			return nil, NewSchemaError(d.Name, v.Name, fmt.Sprintf("label %q is already bound to variant %s", bound.Label, prev.Name), nil)
		}
		t.byLabel[bound.Label] = bound
		t.Variants = append(t.Variants, bound)
	}
	return t, nil
}

// Values returns the labels in declaration order.
func (t *Type) Values() []string {
	labels := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		labels[i] = v.Label
	}
	return labels
}

// Value returns the label bound to the named variant.
func (t *Type) Value(variant string) (string, bool) {
	for _, v := range t.Variants {
		if v.Name == variant {
			return v.Label, true
		}
	}
	return "", false
}

// Lookup returns the variant bound to label.
func (t *Type) Lookup(label string) (*Variant, bool) {
	v, ok := t.byLabel[label]
	return v, ok
}

// FromValue returns the variant bound to label. It panics with a
// *plectrum.UnknownLabelError if no variant is bound to label.
func (t *Type) FromValue(label string) *Variant {
	v, ok := t.byLabel[label]
	if !ok {
		panic(plectrum.NewUnknownLabelError(t.Name, label))
	}
	return v
}

// Table returns the lookup table name: the one set on the descriptor, or
// the plural snake_case form of the type name.
func (t *Type) Table() string {
	if t.table != "" {
		return t.table
	}
	return plural(snake(t.Name))
}

// Receiver returns the receiver name of the generated methods.
func (t *Type) Receiver() string {
	return receiver(t.Name)
}

// File returns the name of the generated enum file.
func (t *Type) File() string {
	return snake(t.Name) + "_enum.go"
}

// SourceFile returns the name of the generated SQL source file.
func (t *Type) SourceFile() string {
	return snake(t.Name) + "_source.go"
}

// GraphQLFile returns the name of the generated GraphQL schema file.
func (t *Type) GraphQLFile() string {
	return snake(t.Name) + ".graphql"
}

// generatedIdents returns the package-level identifiers generated for t.
func (t *Type) generatedIdents() map[string]struct{} {
	return map[string]struct{}{
		t.Name + "Table":     {},
		t.Name + "Values":    {},
		t.Name + "Variants":  {},
		t.Name + "FromValue": {},
	}
}
