package casing

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:generate go tool stringer -type=Style -linecomment -output=style_string.go

// Style is a naming convention used to render an identifier as a label.
type Style int

const (
	// None renders the identifier verbatim.
	None Style = iota

	UpperCase      // UPPER CASE
	LowerCase      // lower case
	TitleCase      // Title Case
	CamelCase      // camelCase
	UpperCamelCase // UpperCamelCase
	SnakeCase      // snake_case
	UpperSnakeCase // UPPER_SNAKE_CASE
	KebabCase      // kebab-case
	UpperKebabCase // UPPER-KEBAB-CASE
	TrainCase      // Train-Case
	FlatCase       // flatcase
	UpperFlatCase  // UPPERFLATCASE

	styleCount = int(iota)
)

// ErrUnknownStyle is returned when a style token is not recognized.
var ErrUnknownStyle = errors.New("casing: unknown style")

// UnknownStyleError reports a style token that matches none of the supported styles.
type UnknownStyleError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("casing: unknown style %q (want one of %s)", e.Token, strings.Join(Tokens(), ", "))
}

// Is reports whether the target matches ErrUnknownStyle.
func (e *UnknownStyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}

// Styles returns the supported styles in declaration order. None is not included.
func Styles() []Style {
	styles := make([]Style, 0, styleCount-1)
	for s := UpperCase; int(s) < styleCount; s++ {
		styles = append(styles, s)
	}
	return styles
}

// Tokens returns the exact tokens accepted by ParseStyle.
func Tokens() []string {
	styles := Styles()
	tokens := make([]string, len(styles))
	for i, s := range styles {
		tokens[i] = s.String()
	}
	return tokens
}

// ParseStyle returns the style named by token. Matching is exact: no case
// folding, trimming or partial matches.
func ParseStyle(token string) (Style, error) {
	for _, s := range Styles() {
		if s.String() == token {
			return s, nil
		}
	}
	return None, &UnknownStyleError{Token: token}
}

// MustParseStyle is like ParseStyle but panics if the token is unknown.
func MustParseStyle(token string) Style {
	s, err := ParseStyle(token)
	if err != nil {
		panic(err)
	}
	return s
}

// IsValid reports whether s is None or one of the twelve styles.
func (s Style) IsValid() bool {
	return s >= None && int(s) < styleCount
}

// Convert renders s in the style. Unknown styles behave like None.
func (s Style) Convert(text string) string {
	if s == None || !s.IsValid() {
		return text
	}
	words := Words(text)
	switch s {
	case UpperCase:
		return join(words, " ", upper)
	case LowerCase:
		return join(words, " ", lower)
	case TitleCase:
		return join(words, " ", title)
	case CamelCase:
		for i, w := range words {
			if i == 0 {
				words[i] = lower(w)
			} else {
				words[i] = title(w)
			}
		}
		return strings.Join(words, "")
	case UpperCamelCase:
		return join(words, "", title)
	case SnakeCase:
		return join(words, "_", lower)
	case UpperSnakeCase:
		return join(words, "_", upper)
	case KebabCase:
		return join(words, "-", lower)
	case UpperKebabCase:
		return join(words, "-", upper)
	case TrainCase:
		return join(words, "-", title)
	case FlatCase:
		return join(words, "", lower)
	default: // UpperFlatCase
		return join(words, "", upper)
	}
}

// Words splits text into words. Boundaries are the separators '_', '-' and
// white space, a lower-to-upper transition ("darkBlue"), the end of an
// acronym ("HTTPCode" splits as "HTTP", "Code") and letter/digit transitions.
func Words(text string) []string {
	var (
		words []string
		runes = []rune(text)
		start = -1
	)
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r),
			unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]),
			unicode.IsLetter(prev) && unicode.IsDigit(r),
			unicode.IsDigit(prev) && unicode.IsLetter(r):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

func join(words []string, sep string, f func(string) string) string {
	for i, w := range words {
		words[i] = f(w)
	}
	return strings.Join(words, sep)
}

// Casers keep state and are not safe for concurrent use, so each call
// gets its own.

func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

func title(s string) string { return cases.Title(language.Und).String(s) }
