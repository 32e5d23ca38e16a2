// Package schema describes closed enumerations: an ordered set of unit
// variants plus an optional naming convention that derives each variant's
// external label.
//
// Definitions are built in Go with the fluent builder:
//
//	schema.Enum("Color").
//	    RenameAll("snake_case").
//	    Values("Red", "Green", "Yellow", "DarkBlue").
//	    Descriptor()
//
// or decoded from a definition file (see compiler/load):
//
//	enums:
//	  - name: Color
//	    rename_all: snake_case
//	    variants: [Red, Green, Yellow, DarkBlue]
//
// A descriptor is only a description. Validation (unit-only variants, known
// naming convention, distinct labels) happens when compiler/gen binds it.
package schema
