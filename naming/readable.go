package naming

import (
	"log/slog"
	"maps"
	"regexp"
	"strings"
)

// identifierSafe matches text that can appear in an unquoted identifier.
var identifierSafe = regexp.MustCompile(`^[A-Za-z0-9_$]*$`)

// Readable is a Strategy producing snake case identifiers and
// <PREFIX>_<table>_<columns> constraint names. Whenever the matching switch
// is off, or for operations it does not override, it forwards the call
// unchanged to its fallback strategy.
//
// A Readable is immutable after construction and safe for concurrent use.
type Readable struct {
	readableCase            bool
	readableConstraintNames bool
	pluralTableNames        bool
	pluralOverrides         map[string]string
	fallback                Strategy
	logger                  *slog.Logger
}

var _ Strategy = (*Readable)(nil)

// New creates a Readable strategy. A nil fallback means DefaultStrategy and
// a nil logger means slog.Default().
func New(opts Options, fallback Strategy, logger *slog.Logger) *Readable {
	if fallback == nil {
		fallback = DefaultStrategy{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Readable{
		readableCase:            boolOr(opts.ReadableCase, true),
		readableConstraintNames: boolOr(opts.ReadableConstraintNames, true),
		pluralTableNames:        opts.PluralTableNames,
		pluralOverrides:         maps.Clone(opts.PluralOverrides),
		fallback:                fallback,
		logger:                  logger,
	}
	logger.Debug("naming strategy configured",
		slog.Bool("readable_case", r.readableCase),
		slog.Bool("readable_constraint_names", r.readableConstraintNames),
		slog.Bool("plural_table_names", r.pluralTableNames),
	)
	return r
}

// Default returns a Readable with default options over DefaultStrategy.
func Default() *Readable {
	return New(DefaultOptions(), nil, nil)
}

// ReadableCase reports whether snake case names are enabled.
func (r *Readable) ReadableCase() bool {
	return r.readableCase
}

// ReadableConstraintNames reports whether readable constraint names are enabled.
func (r *Readable) ReadableConstraintNames() bool {
	return r.readableConstraintNames
}

// TableName returns customName verbatim when set, otherwise the snake-cased
// class name.
// Example: "TestTableName" -> "test_table_name"
func (r *Readable) TableName(className, customName string) string {
	if !r.readableCase {
		return r.fallback.TableName(className, customName)
	}
	if customName != "" {
		return customName
	}
	name := SnakeCase(className)
	if r.pluralTableNames {
		name = r.Pluralize(name)
	}
	return name
}

// ColumnName snake-cases every embedded prefix and the property name. A
// custom name is used verbatim in place of the property name.
// Example: ("testColumnName", "", ["testPrefix1"]) -> "test_prefix1_test_column_name"
func (r *Readable) ColumnName(propertyName, customName string, embeddedPrefixes []string) string {
	if !r.readableCase {
		return r.fallback.ColumnName(propertyName, customName, embeddedPrefixes)
	}
	name := customName
	if name == "" {
		name = SnakeCase(propertyName)
	}
	if len(embeddedPrefixes) == 0 {
		return name
	}
	prefixes := make([]string, len(embeddedPrefixes))
	for i, p := range embeddedPrefixes {
		prefixes[i] = SnakeCase(p)
	}
	if joined := strings.Join(prefixes, "_"); joined != "" {
		return joined + "_" + name
	}
	return name
}

func (r *Readable) RelationName(propertyName string) string {
	if !r.readableCase {
		return r.fallback.RelationName(propertyName)
	}
	return SnakeCase(propertyName)
}

// JoinColumnName snake-cases "<relation>_<referencedColumn>" as one string.
func (r *Readable) JoinColumnName(relationName, referencedColumnName string) string {
	if !r.readableCase {
		return r.fallback.JoinColumnName(relationName, referencedColumnName)
	}
	return SnakeCase(relationName + "_" + referencedColumnName)
}

// JoinTableName snake-cases "<first>_<firstProperty>_<second>", with dots in
// the property path replaced by underscores. secondPropertyName is not used.
// Example: ("firstTable", "secondTable", "first.propertyName", "x") -> "first_table_first_property_name_second_table"
func (r *Readable) JoinTableName(firstTableName, secondTableName, firstPropertyName, secondPropertyName string) string {
	if !r.readableCase {
		return r.fallback.JoinTableName(firstTableName, secondTableName, firstPropertyName, secondPropertyName)
	}
	return SnakeCase(firstTableName + "_" + strings.ReplaceAll(firstPropertyName, ".", "_") + "_" + secondTableName)
}

// JoinTableColumnName snake-cases "<table>_<column>", using propertyName
// when columnName is empty.
func (r *Readable) JoinTableColumnName(tableName, propertyName, columnName string) string {
	if !r.readableCase {
		return r.fallback.JoinTableColumnName(tableName, propertyName, columnName)
	}
	if columnName == "" {
		columnName = propertyName
	}
	return SnakeCase(tableName + "_" + columnName)
}

func (r *Readable) PrimaryKeyName(table TableRef, columnNames []string) string {
	if !r.readableConstraintNames {
		return r.fallback.PrimaryKeyName(table, columnNames)
	}
	return r.constraintName("PK", table, columnNames)
}

func (r *Readable) UniqueConstraintName(table TableRef, columnNames []string) string {
	if !r.readableConstraintNames {
		return r.fallback.UniqueConstraintName(table, columnNames)
	}
	return r.constraintName("UQ", table, columnNames)
}

// IndexName appends "_<where>" for partial indexes. The predicate is used
// verbatim and may leave characters that need quoting in the name.
func (r *Readable) IndexName(table TableRef, columnNames []string, where string) string {
	if !r.readableConstraintNames {
		return r.fallback.IndexName(table, columnNames, where)
	}
	name := r.constraintName("IDX", table, columnNames)
	if where == "" {
		return name
	}
	if !identifierSafe.MatchString(where) {
		r.logger.Warn("index name contains a raw predicate that requires quoting",
			slog.String("table", table.Name()),
			slog.String("where", where),
		)
	}
	return name + "_" + where
}

// ForeignKeyName names the key after the referencing side only.
func (r *Readable) ForeignKeyName(table TableRef, columnNames []string, referencedTablePath string, referencedColumnNames []string) string {
	if !r.readableConstraintNames {
		return r.fallback.ForeignKeyName(table, columnNames, referencedTablePath, referencedColumnNames)
	}
	return r.constraintName("FK", table, columnNames)
}

// constraintName builds "<prefix>_<table>_<columns>". Columns keep the
// caller's order and duplicates.
func (r *Readable) constraintName(prefix string, table TableRef, columnNames []string) string {
	columns := make([]string, len(columnNames))
	for i, c := range columnNames {
		columns[i] = r.ColumnName(c, "", nil)
	}
	return prefix + "_" + table.Name() + "_" + strings.Join(columns, "_")
}

func (r *Readable) RelationConstraintName(table TableRef, columnNames []string, where string) string {
	return r.fallback.RelationConstraintName(table, columnNames, where)
}

func (r *Readable) DefaultConstraintName(table TableRef, columnName string) string {
	return r.fallback.DefaultConstraintName(table, columnName)
}

func (r *Readable) CheckConstraintName(table TableRef, expression string, isEnum bool) string {
	return r.fallback.CheckConstraintName(table, expression, isEnum)
}

func (r *Readable) ExclusionConstraintName(table TableRef, expression string) string {
	return r.fallback.ExclusionConstraintName(table, expression)
}

func (r *Readable) JoinTableColumnDuplicationPrefix(columnName string, index int) string {
	return r.fallback.JoinTableColumnDuplicationPrefix(columnName, index)
}

func (r *Readable) JoinTableInverseColumnName(tableName, propertyName, columnName string) string {
	return r.fallback.JoinTableInverseColumnName(tableName, propertyName, columnName)
}

func (r *Readable) ClosureJunctionTableName(originalClosureTableName string) string {
	return r.fallback.ClosureJunctionTableName(originalClosureTableName)
}

func (r *Readable) PrefixTableName(prefix, tableName string) string {
	return r.fallback.PrefixTableName(prefix, tableName)
}

func (r *Readable) NestedSetColumnNames() NestedSetColumns {
	return r.fallback.NestedSetColumnNames()
}

func (r *Readable) MaterializedPathColumnName() string {
	return r.fallback.MaterializedPathColumnName()
}
