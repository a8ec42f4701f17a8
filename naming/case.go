package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ABc -> A_Bc
	acronymBoundary = regexp.MustCompile(`([A-Z])([A-Z])([a-z])`)
	// aB -> a_B, 1B -> 1_B
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	camelBoundary = regexp.MustCompile(`^([A-Z])|[\s\-_](\w)`)
	titleWord     = regexp.MustCompile(`\w\S*`)
)

// SnakeCase converts a mixed or camel case identifier to lower-case,
// underscore separated form.
// Example: "createdAt" -> "created_at", "HTTPServer" -> "http_server"
//
// Word boundaries are found on ASCII upper/lower transitions only, and
// lower-casing uses Unicode full case mapping without locale tailoring.
// SnakeCase(SnakeCase(s)) == SnakeCase(s) for every s.
func SnakeCase(s string) string {
	if s == "" {
		return ""
	}
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}${3}")
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}")
	return lower(s)
}

// camelCase lowers a leading upper-case letter and removes every
// whitespace, '-' or '_' that precedes a word character, upper-casing
// that character.
// Example: "user_first_name" -> "userFirstName"
func camelCase(s string) string {
	return camelBoundary.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) == 1 {
			return strings.ToLower(m)
		}
		return strings.ToUpper(m[1:])
	})
}

// titleCase capitalizes the first character of every word and lower-cases
// the rest of it.
// Example: "firstName" -> "Firstname"
func titleCase(s string) string {
	return titleWord.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + lower(w[1:])
	})
}

// lower builds a fresh caser on every call since a cases.Caser keeps
// state and cannot be shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
