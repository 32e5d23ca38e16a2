package sql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/plectrum/dialect"
)

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores, dots for schema.name)
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s) &&
		!strings.HasPrefix(s, ".") && !strings.HasSuffix(s, ".") && !strings.Contains(s, "..")
}

// QuoteIdent quotes a table or column name for the given dialect. Qualified
// names (schema.table) are quoted part by part. Names that are not plain SQL
// identifiers are rejected.
func QuoteIdent(name, ident string) (string, error) {
	if !isValidIdentifier(ident) {
		return "", fmt.Errorf("dialect/sql: invalid identifier %q", ident)
	}
	q := `"`
	if name == dialect.MySQL {
		q = "`"
	}
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = q + p + q
	}
	return strings.Join(parts, "."), nil
}

// QuoteString returns s as a SQL string literal for the given dialect.
func QuoteString(name, s string) string {
	if name == dialect.MySQL {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
