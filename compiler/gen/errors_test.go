package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("Color", "DarkBlue", "invalid label", cause)

		assert.Equal(t, "plectrum: schema error on enum Color variant DarkBlue: invalid label: underlying error", err.Error())
	})

	t.Run("Error message with type only", func(t *testing.T) {
		err := &SchemaError{Type: "Color"}
		assert.Equal(t, "plectrum: schema error on enum Color", err.Error())
		assert.NotContains(t, err.Error(), "variant")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Color", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError("Color", "", "", nil)
		assert.True(t, errors.Is(err, ErrInvalidSchema))
		assert.False(t, errors.Is(err, ErrMissingConfig))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		err := NewSchemaError("Color", "Red", "test", nil)
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("IDType", "float", "unsupported type")

		assert.Equal(t, `plectrum: config error for "IDType" (value: float): unsupported type`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewGenerationError("write", "color_enum.go", "write file", cause)

		assert.Equal(t, "plectrum: generation error in phase write (file: color_enum.go): write file: disk full", err.Error())
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "format"}
		assert.Equal(t, "plectrum: generation error in phase format", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("io error")
		err := NewGenerationError("enum", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
	})
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isSchema bool
		isConfig bool
		isGen    bool
	}{
		{
			name:     "SchemaError",
			err:      NewSchemaError("Color", "", "", nil),
			isSchema: true,
		},
		{
			name:     "ConfigError",
			err:      NewConfigError("Package", nil, ""),
			isConfig: true,
		},
		{
			name:  "GenerationError",
			err:   NewGenerationError("enum", "", "", nil),
			isGen: true,
		},
		{
			name:     "Joined",
			err:      errors.Join(errors.New("other"), NewSchemaError("Color", "", "", nil)),
			isSchema: true,
		},
		{
			name: "Other error",
			err:  errors.New("other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isSchema, IsSchemaError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Run("As SchemaError", func(t *testing.T) {
		err := NewSchemaError("Color", "Red", "invalid", nil)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "Color", schemaErr.Type)
		assert.Equal(t, "Red", schemaErr.Variant)
	})

	t.Run("As GenerationError", func(t *testing.T) {
		err := NewGenerationError("enum", "color_enum.go", "failed", nil)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, "enum", genErr.Phase)
		assert.Equal(t, "color_enum.go", genErr.File)
	})
}
