package gen

import (
	"errors"

	"github.com/syssam/plectrum/schema"
)

// Graph holds the bound enums of one generated package.
type Graph struct {
	*Config
	// Nodes are the bound enums, in definition order.
	Nodes []*Type
}

// NewGraph binds every descriptor and returns the graph. Binding continues
// past the first failure so that all definition errors are reported together.
// The id type of an enum that does not set one is taken from the config.
func NewGraph(c *Config, descs ...*schema.Descriptor) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	c.defaults()
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(descs))}
	var (
		errs  []error
		names = make(map[string]struct{}, len(descs))
		files = make(map[string]string, len(descs))
	)
	for _, d := range descs {
		t, err := Bind(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := names[t.Name]; ok {
			errs = append(errs, NewSchemaError(t.Name, "", "enum is defined more than once", nil))
			continue
		}
		names[t.Name] = struct{}{}
		if prev, ok := files[t.File()]; ok {
			errs = append(errs, NewSchemaError(t.Name, "", "generated file "+t.File()+" collides with enum "+prev, nil))
			continue
		}
		files[t.File()] = t.Name
		if t.IDType == "" {
			t.IDType = c.IDType
		}
		g.Nodes = append(g.Nodes, t)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// Type returns the bound enum with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Tables returns the lookup table names in definition order.
func (g *Graph) Tables() []string {
	tables := make([]string, len(g.Nodes))
	for i, t := range g.Nodes {
		tables[i] = t.Table()
	}
	return tables
}
