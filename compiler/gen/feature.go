package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureSQLSource generates a constructor for the SQL lookup-table source
	// and a typed loader for every enum.
	FeatureSQLSource = Feature{
		Name:        "sql/source",
		Stage:       Stable,
		Default:     false,
		Description: "Generates NewXSource and LoadXMapping functions backed by dialect/sql",
		cleanup: func(g *Graph) error {
			for _, t := range g.Nodes {
				if err := remove(g.Target, t.SourceFile()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	// FeatureSchema generates schema.sql holding the CREATE TABLE and seed
	// statements of every lookup table in the configured dialect.
	FeatureSchema = Feature{
		Name:        "sql/schema",
		Stage:       Beta,
		Default:     false,
		Description: "Generates the DDL and seed rows of the lookup tables",
		cleanup: func(g *Graph) error {
			return remove(g.Target, SchemaFile)
		},
	}

	// FeatureGraphQL generates a GraphQL enum definition per enum together with
	// the MarshalGQL and UnmarshalGQL methods.
	FeatureGraphQL = Feature{
		Name:        "graphql",
		Stage:       Alpha,
		Default:     false,
		Description: "Generates GraphQL enum SDL and gqlgen marshalers",
		cleanup: func(g *Graph) error {
			for _, t := range g.Nodes {
				if err := remove(g.Target, t.GraphQLFile()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureSQLSource,
		FeatureSchema,
		FeatureGraphQL,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished, but
	// breaking-changes to their output are expected.
	Alpha

	// Beta features are Alpha features that are documented, and no
	// breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// A Feature of the plectrum codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup removes the files of a previous codegen run when the
	// feature-flag is disabled.
	cleanup func(*Graph) error
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// remove file (if exists) from dir.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
