// Package gen binds enum definitions to their labels and generates the Go
// code of the bound enums.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Enum definition (schema.Enum builder or definitions file)
//	        ↓
//	   Bind (validation, label derivation)
//	        ↓
//	   Graph (bound enums + Config)
//	        ↓
//	   JenniferGenerator
//	        ↓
//	   Generated package
//
// # Key Types
//
//   - Type: an enum whose variants are bound to labels. It can also be used
//     at runtime without generating code, see Type.Values and Type.Lookup.
//   - Variant: a bound case with its label and constant name.
//   - Graph: all enums of one generated package.
//   - Config: global configuration for code generation.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: enum definition errors (wraps ErrInvalidSchema)
//   - ConfigError: configuration errors (wraps ErrMissingConfig)
//   - GenerationError: code generation errors (wraps ErrGenerationFailed)
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, descs...)
//	if err != nil {
//	    if gen.IsSchemaError(err) {
//	        // Fix the definition
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./colors"),
//	    gen.WithPackage("github.com/org/project/colors"),
//	    gen.WithFeatures(gen.FeatureSQLSource, gen.FeatureSchema),
//	    gen.WithDialect("postgres"),
//	)
//
// # Generated Output
//
//	{target}/
//	├── {enum}_enum.go    // Type, constants, Enum methods
//	├── {enum}_source.go  // SQL source and loader (sql/source)
//	├── {enum}.graphql    // GraphQL enum definition (graphql)
//	└── schema.sql        // Lookup tables DDL and seed rows (sql/schema)
package gen
