// Package sqlutil provides SQL utility functions.
package sqlutil

import (
	"fmt"
	"strings"
)

// Dialect selects how identifiers are quoted.
type Dialect string

const (
	// MySQL quotes with backticks.
	MySQL Dialect = "mysql"
	// ANSI quotes with double quotes (PostgreSQL, SQLite, SQL Server in ANSI mode).
	ANSI Dialect = "ansi"
)

// ParseDialect validates a dialect name.
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(name)); d {
	case MySQL, ANSI:
		return d, nil
	default:
		return "", fmt.Errorf("unknown SQL dialect %q (want mysql or ansi)", name)
	}
}

// QuoteIdentifier quotes a generated identifier (table name, index name,
// etc.) for the dialect and escapes the quote character within it by
// doubling.
func QuoteIdentifier(name string, dialect Dialect) string {
	q := "`"
	if dialect == ANSI {
		q = `"`
	}
	escaped := strings.ReplaceAll(name, q, q+q)
	return q + escaped + q
}
