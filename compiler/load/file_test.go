package load

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/plectrum/compiler/gen"
)

func TestReadFile(t *testing.T) {
	f, err := ReadFile(filepath.Join("testdata", "colors.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "colors.yaml"), f.Path)
	assert.Equal(t, "github.com/acme/app/colors", f.Package)
	assert.Equal(t, "postgres", f.Dialect)
	assert.Equal(t, []string{"sql/source", "sql/schema"}, f.Features)
	require.Len(t, f.Enums, 2)

	color := f.Enums[0]
	assert.Equal(t, "Color", color.Name)
	assert.Equal(t, "snake_case", color.RenameAll)
	assert.Equal(t, "Color is a paint color.", color.Comment)
	assert.Equal(t, []string{"Red", "Green", "Yellow", "DarkBlue"}, color.Names())

	state := f.Enums[1]
	assert.Equal(t, "item_states", state.Table)
	assert.Equal(t, "string", state.IDType)
	require.Len(t, state.Variants, 3)
	assert.Equal(t, "InProgress", state.Variants[1].Name)
	assert.Equal(t, "InProgress is picked up by a worker.", state.Variants[1].Comment)
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
	assert.Contains(t, err.Error(), "invalid.yaml")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "scalar and mapping variants",
			data: "enums:\n  - name: Shape\n    variants:\n      - Circle\n      - Rect: {fields: [w, h]}\n",
		},
		{
			name:    "empty",
			data:    "",
			wantErr: "empty definitions file",
		},
		{
			name:    "no enums",
			data:    "package: colors\n",
			wantErr: "no enums defined",
		},
		{
			name:    "unknown key",
			data:    "enums: []\nworkers: 4\n",
			wantErr: "workers",
		},
		{
			name:    "variant with two keys",
			data:    "enums:\n  - name: Shape\n    variants:\n      - {Circle: {}, Rect: {}}\n",
			wantErr: "exactly one key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestFileGraph(t *testing.T) {
	t.Run("binds enums with file settings", func(t *testing.T) {
		f, err := ReadFile(filepath.Join("testdata", "colors.yaml"))
		require.NoError(t, err)

		g, err := f.Graph(gen.WithTarget(t.TempDir()))
		require.NoError(t, err)
		assert.Equal(t, "postgres", g.Dialect)
		assert.Equal(t, "colors", g.PackageName())
		enabled, err := g.FeatureEnabled("sql/schema")
		require.NoError(t, err)
		assert.True(t, enabled)

		color, ok := g.Type("Color")
		require.True(t, ok)
		assert.Equal(t, "int64", color.IDType)
		assert.Equal(t, []string{"red", "green", "yellow", "dark_blue"}, color.Values())

		state, ok := g.Type("ItemState")
		require.True(t, ok)
		assert.Equal(t, "string", state.IDType)
	})

	t.Run("caller options override the file", func(t *testing.T) {
		f, err := Parse([]byte("dialect: postgres\nenums:\n  - name: Shape\n    variants: [Circle]\n"))
		require.NoError(t, err)

		g, err := f.Graph(gen.WithDialect("mysql"))
		require.NoError(t, err)
		assert.Equal(t, "mysql", g.Dialect)
	})

	t.Run("data-bearing variant is rejected at bind time", func(t *testing.T) {
		f, err := Parse([]byte("enums:\n  - name: Shape\n    variants: [Circle, {Rect: {fields: [w, h]}}]\n"))
		require.NoError(t, err)

		_, err = f.Graph()
		require.Error(t, err)
		assert.True(t, gen.IsSchemaError(err))
		assert.Contains(t, err.Error(), "data-bearing")
	})

	t.Run("unknown feature", func(t *testing.T) {
		f, err := Parse([]byte("features: [privacy]\nenums:\n  - name: Shape\n    variants: [Circle]\n"))
		require.NoError(t, err)

		_, err = f.Graph()
		assert.True(t, gen.IsConfigError(err))
	})
}
