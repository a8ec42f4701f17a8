package naming

// Options holds the construction-time switches of a Readable strategy.
// A nil flag means "not set" and resolves to true.
type Options struct {
	// ReadableCase renders tables, columns, relations and join names in
	// snake case. Example: createdAt -> created_at
	ReadableCase *bool `mapstructure:"readable_case"`

	// ReadableConstraintNames renders constraint and index names as
	// <PREFIX>_<table>_<columns> instead of hashed identifiers.
	// Example: FK_b75a68b1ca018c3daa0bb77731b -> FK_user_organization_id
	ReadableConstraintNames *bool `mapstructure:"readable_constraint_names"`

	// PluralTableNames pluralizes derived table names (user -> users).
	// Custom table names are never changed. Only used with ReadableCase.
	PluralTableNames bool `mapstructure:"plural_table_names"`

	// PluralOverrides maps singular -> custom plural for PluralTableNames.
	// Example: {"person": "persons", "staff": "staff"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`
}

// DefaultOptions returns options with both readable switches on.
func DefaultOptions() Options {
	return Options{
		ReadableCase:            Bool(true),
		ReadableConstraintNames: Bool(true),
	}
}

// Bool returns a pointer to v, for filling Options literals.
func Bool(v bool) *bool {
	return &v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
