package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.Logging.validate(result)
	c.validateNaming(result)

	return result
}

func (l *LoggingConfig) validate(result *ValidationResult) {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q", l.Level),
			Hint:    "use one of: debug, info, warn, error",
		})
	}

	switch l.Format {
	case "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q", l.Format),
			Hint:    "use one of: json, text",
		})
	}
}

func (c *Config) validateNaming(result *ValidationResult) {
	for singular, plural := range c.Naming.PluralOverrides {
		if singular == "" || plural == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "naming.plural_overrides",
				Message: fmt.Sprintf("empty word in override %q -> %q", singular, plural),
				Hint:    "use singular=plural pairs, e.g. person=persons",
			})
		}
	}

	readableCase := c.Naming.ReadableCase == nil || *c.Naming.ReadableCase
	if readableCase {
		return
	}
	if c.Naming.PluralTableNames {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "naming.plural_table_names",
			Message: "has no effect while naming.readable_case is false",
			Hint:    "enable naming.readable_case or remove naming.plural_table_names",
		})
	}
	if len(c.Naming.PluralOverrides) > 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "naming.plural_overrides",
			Message: "has no effect while naming.readable_case is false",
		})
	}
}
