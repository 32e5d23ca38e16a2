// Package casing converts identifier-style tokens between naming conventions.
//
// A Style is one of twelve closed naming conventions. Styles are selected by
// their exact token, the same token that appears in enum definition files:
//
//	s, err := casing.ParseStyle("snake_case")
//	if err != nil {
//	    return err
//	}
//	s.Convert("DarkBlue") // "dark_blue"
//
// The zero Style, None, leaves the input untouched. Conversion is total,
// deterministic and does not depend on the process locale.
package casing
