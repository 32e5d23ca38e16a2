// Package load reads enum definitions files.
//
// A definitions file lists the enums of one generated package together with
// the package-wide codegen settings:
//
//	package: github.com/acme/app/colors
//	dialect: postgres
//	features: [sql/source, sql/schema]
//	enums:
//	  - name: Color
//	    rename_all: snake_case
//	    variants: [Red, Green, Yellow, DarkBlue]
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/plectrum/compiler/gen"
	"github.com/syssam/plectrum/schema"
)

// File is a decoded definitions file.
type File struct {
	// Path of the file, empty when decoded from memory.
	Path string `yaml:"-"`
	// Package is the import path of the generated package.
	Package string `yaml:"package,omitempty"`
	// Target is the output directory, relative to the file.
	Target string `yaml:"target,omitempty"`
	// Dialect of the generated schema file.
	Dialect string `yaml:"dialect,omitempty"`
	// IDType is the default id type of the enums.
	IDType string `yaml:"id_type,omitempty"`
	// Features are the names of the enabled codegen features.
	Features []string `yaml:"features,omitempty"`
	// Enums in definition order.
	Enums []*schema.Descriptor `yaml:"enums"`
}

// Parse decodes a definitions file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("load: empty definitions file")
		}
		return nil, fmt.Errorf("load: %w", err)
	}
	if len(f.Enums) == 0 {
		return nil, errors.New("load: no enums defined")
	}
	return f, nil
}

// ReadFile reads and decodes the definitions file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Options returns the codegen options set by the file.
func (f *File) Options() []gen.Option {
	var opts []gen.Option
	if f.Package != "" {
		opts = append(opts, gen.WithPackage(f.Package))
	}
	if f.Target != "" {
		opts = append(opts, gen.WithTarget(f.Target))
	}
	if f.Dialect != "" {
		opts = append(opts, gen.WithDialect(f.Dialect))
	}
	if f.IDType != "" {
		opts = append(opts, gen.WithIDType(f.IDType))
	}
	if len(f.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(f.Features...))
	}
	return opts
}

// Graph binds the enums of the file. Options passed by the caller are
// applied after the options of the file, and override them.
func (f *File) Graph(opts ...gen.Option) (*gen.Graph, error) {
	c, err := gen.NewConfig(append(f.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(c, f.Enums...)
}
