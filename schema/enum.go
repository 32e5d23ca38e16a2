package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/plectrum/casing"
)

// Descriptor holds the definition of one enumeration.
type Descriptor struct {
	// Name is the Go type name of the enumeration.
	Name string `yaml:"name"`
	// RenameAll is the naming convention token applied to every variant.
	// Empty means the variant identifier is used verbatim.
	RenameAll string `yaml:"rename_all,omitempty"`
	// Comment is emitted as the type documentation.
	Comment string `yaml:"comment,omitempty"`
	// Table is the lookup table holding the external id/label rows.
	Table string `yaml:"table,omitempty"`
	// IDType is the Go type of the external identifier.
	IDType string `yaml:"id_type,omitempty"`
	// Variants in declaration order.
	Variants []*Variant `yaml:"variants"`
	// Err collects errors recorded by the builder.
	Err error `yaml:"-"`
}

// Variant is one case of an enumeration.
type Variant struct {
	Name    string   `yaml:"name"`
	Comment string   `yaml:"comment,omitempty"`
	Fields  []string `yaml:"fields,omitempty"`
}

// IsUnit reports whether the variant carries no payload.
func (v *Variant) IsUnit() bool { return len(v.Fields) == 0 }

// UnmarshalYAML accepts either a bare identifier or a single-key mapping
// from the identifier to its attributes:
//
//	- Red
//	- Rgb: {fields: [r, g, b]}
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Name = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: variant mapping must have exactly one key", node.Line)
		}
		var attrs struct {
			Comment string   `yaml:"comment"`
			Fields  []string `yaml:"fields"`
		}
		if err := node.Content[1].Decode(&attrs); err != nil {
			return fmt.Errorf("line %d: variant %q: %w", node.Line, node.Content[0].Value, err)
		}
		v.Name = node.Content[0].Value
		v.Comment = attrs.Comment
		v.Fields = attrs.Fields
		return nil
	default:
		return fmt.Errorf("line %d: variant must be a string or a mapping", node.Line)
	}
}

// Names returns the variant identifiers in declaration order.
func (d *Descriptor) Names() []string {
	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = v.Name
	}
	return names
}

// EnumBuilder is the builder for enumeration descriptors.
type EnumBuilder struct {
	desc *Descriptor
}

// Enum returns a new builder for the enumeration with the given Go type name.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{desc: &Descriptor{Name: name}}
}

// Values appends unit variants.
func (b *EnumBuilder) Values(names ...string) *EnumBuilder {
	for _, name := range names {
		b.desc.Variants = append(b.desc.Variants, &Variant{Name: name})
	}
	return b
}

// Variant appends a single variant. Passing fields declares a data-bearing
// case, which is not supported and fails at bind time.
func (b *EnumBuilder) Variant(name string, fields ...string) *EnumBuilder {
	b.desc.Variants = append(b.desc.Variants, &Variant{Name: name, Fields: fields})
	return b
}

// RenameAll sets the naming convention used to derive labels.
func (b *EnumBuilder) RenameAll(token string) *EnumBuilder {
	if _, err := casing.ParseStyle(token); err != nil {
		b.desc.Err = errors.Join(b.desc.Err, fmt.Errorf("schema: enum %s: %w", b.desc.Name, err))
	}
	b.desc.RenameAll = token
	return b
}

// Comment sets the type documentation.
func (b *EnumBuilder) Comment(c string) *EnumBuilder {
	b.desc.Comment = c
	return b
}

// Table sets the lookup table name.
func (b *EnumBuilder) Table(name string) *EnumBuilder {
	b.desc.Table = name
	return b
}

// IDType sets the Go type of the external identifier (int, int32, int64, string or uuid).
func (b *EnumBuilder) IDType(t string) *EnumBuilder {
	b.desc.IDType = t
	return b
}

// Descriptor returns the built descriptor.
func (b *EnumBuilder) Descriptor() *Descriptor {
	return b.desc
}
