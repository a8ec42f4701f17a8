// Package naming provides the naming strategy used to turn entity and
// property identifiers into physical table, column, constraint and index
// names, along with the default strategy it falls back to.
package naming

// Strategy is the full operation set a host mapper calls while generating
// a schema. Every method is a pure function of its arguments.
//
// Optional string arguments use "" for "not supplied".
type Strategy interface {
	TableName(className, customName string) string
	ColumnName(propertyName, customName string, embeddedPrefixes []string) string
	RelationName(propertyName string) string

	PrimaryKeyName(table TableRef, columnNames []string) string
	UniqueConstraintName(table TableRef, columnNames []string) string
	IndexName(table TableRef, columnNames []string, where string) string
	ForeignKeyName(table TableRef, columnNames []string, referencedTablePath string, referencedColumnNames []string) string
	RelationConstraintName(table TableRef, columnNames []string, where string) string
	DefaultConstraintName(table TableRef, columnName string) string
	CheckConstraintName(table TableRef, expression string, isEnum bool) string
	ExclusionConstraintName(table TableRef, expression string) string

	JoinColumnName(relationName, referencedColumnName string) string
	JoinTableName(firstTableName, secondTableName, firstPropertyName, secondPropertyName string) string
	JoinTableColumnDuplicationPrefix(columnName string, index int) string
	JoinTableColumnName(tableName, propertyName, columnName string) string
	JoinTableInverseColumnName(tableName, propertyName, columnName string) string

	ClosureJunctionTableName(originalClosureTableName string) string
	PrefixTableName(prefix, tableName string) string
	NestedSetColumnNames() NestedSetColumns
	MaterializedPathColumnName() string
}

// NestedSetColumns names the bound columns of a nested-set tree table.
type NestedSetColumns struct {
	Left  string
	Right string
}

// Table is the structured form of a table reference.
type Table struct {
	Name string
}

// TableRef refers to a table either by plain name or by a *Table.
// The zero value resolves to "".
type TableRef struct {
	name  string
	table *Table
}

// TableName builds a TableRef from a plain name.
func TableName(name string) TableRef {
	return TableRef{name: name}
}

// TableOf builds a TableRef from a structured table. A nil table resolves
// to "".
func TableOf(t *Table) TableRef {
	return TableRef{table: t}
}

// Name resolves the reference to its string name.
func (r TableRef) Name() string {
	if r.table != nil {
		return r.table.Name
	}
	return r.name
}

// IsStructured reports whether the reference was built from a *Table.
func (r TableRef) IsStructured() bool {
	return r.table != nil
}
