// Package file provides a data source reading an {id: label} table from a
// YAML, JSON or MessagePack file.
//
//	src := file.New[int64]("testdata/colors.yaml")
//	m, err := plectrum.Load[int64, Color](ctx, src)
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/syssam/plectrum"
)

// Format is the encoding of a table file.
type Format string

// Supported formats.
const (
	YAML    Format = "yaml"
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".json":
		return JSON, true
	case ".msgpack", ".mp":
		return MsgPack, true
	default:
		return "", false
	}
}

// Option configures a Source.
type Option func(*options)

type options struct {
	format Format
}

// WithFormat sets the format of the file, regardless of its extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// Source reads the table from a file on every Load.
type Source[ID comparable] struct {
	path string
	opts options
}

// New returns a source reading the file at path.
func New[ID comparable](path string, opts ...Option) *Source[ID] {
	s := &Source[ID]{path: path}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Path returns the path of the file.
func (s *Source[ID]) Path() string { return s.path }

// Load reads and decodes the file. JSON object keys are parsed into ID as
// encoding/json does for map keys. In every format a key that appears more
// than once keeps the label of its last occurrence.
func (s *Source[ID]) Load(ctx context.Context) (map[ID]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format := s.opts.format
	if format == "" {
		f, ok := FormatOf(s.path)
		if !ok {
			return nil, fmt.Errorf("file: unknown format of %s", s.path)
		}
		format = f
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	rows := make(map[ID]string)
	switch format {
	case YAML:
		err = decodeYAML(data, rows)
	case JSON:
		err = json.Unmarshal(data, &rows)
	case MsgPack:
		err = msgpack.Unmarshal(data, &rows)
	default:
		return nil, fmt.Errorf("file: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("file: decode %s: %w", s.path, err)
	}
	plectrum.Logger().Debug("table file loaded",
		zap.String("path", s.path),
		zap.String("format", string(format)),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// decodeYAML decodes a YAML mapping into rows pair by pair. Decoding into a
// map directly rejects duplicate keys.
func decodeYAML[ID comparable](data []byte, rows map[ID]string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.AliasNode {
		root = root.Alias
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of ids to labels", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		var (
			id    ID
			label string
		)
		if err := root.Content[i].Decode(&id); err != nil {
			return err
		}
		if err := root.Content[i+1].Decode(&label); err != nil {
			return err
		}
		rows[id] = label
	}
	return nil
}

var _ plectrum.DataSource[int] = (*Source[int])(nil)
