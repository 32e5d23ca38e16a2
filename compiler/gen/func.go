package gen

import (
	"go/token"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/syssam/plectrum/casing"
)

var rules = inflect.NewDefaultRuleset()

// snake converts the given identifier to snake_case.
//
//	Username => username
//	FullName => full_name
//	HTTPCode => http_code
func snake(s string) string {
	return casing.SnakeCase.Convert(s)
}

// plural returns the plural form of a snake_case word.
//
//	color      => colors
//	item_state => item_states
//	category   => categories
func plural(s string) string {
	return rules.Pluralize(s)
}

// receiver returns the receiver name of the given type: the lower-cased
// initials, or the first letter when the initials are too long.
//
//	Color     => c
//	ItemState => is
func receiver(s string) string {
	var r []rune
	for i, c := range s {
		if i == 0 || unicode.IsUpper(c) {
			r = append(r, unicode.ToLower(c))
		}
	}
	if len(r) > 3 {
		r = r[:1]
	}
	name := string(r)
	if _, ok := reserved[name]; ok || token.IsKeyword(name) || name == "" {
		return "e"
	}
	return name
}

// reserved holds the parameter names of generated methods.
var reserved = map[string]struct{}{
	"err":   {},
	"label": {},
	"name":  {},
	"text":  {},
	"ok":    {},
	"v":     {},
	"w":     {},
}

// upperSnake converts the given identifier to UPPER_SNAKE_CASE.
func upperSnake(s string) string {
	return casing.UpperSnakeCase.Convert(s)
}
