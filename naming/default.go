package naming

import (
	"crypto/sha1"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// Hex digest lengths kept after each constraint prefix.
const (
	keyHashLen   = 27
	shortHashLen = 26
)

// DefaultStrategy is the mapper's stock naming strategy: verbatim property
// names, camel-cased join columns and hashed constraint names. It is the
// fallback target of Readable.
type DefaultStrategy struct{}

var _ Strategy = DefaultStrategy{}

// TableName returns customName when set, else the snake-cased class name.
func (DefaultStrategy) TableName(className, customName string) string {
	if customName != "" {
		return customName
	}
	return SnakeCase(className)
}

// ColumnName returns the property (or custom) name as-is. Embedded prefixes
// are camel-cased and the name is appended in title case.
// Example: ("name", "", ["author", "profile"]) -> "authorProfileName"
func (DefaultStrategy) ColumnName(propertyName, customName string, embeddedPrefixes []string) string {
	name := propertyName
	if customName != "" {
		name = customName
	}
	if len(embeddedPrefixes) > 0 {
		return camelCase(strings.Join(embeddedPrefixes, "_")) + titleCase(name)
	}
	return name
}

func (DefaultStrategy) RelationName(propertyName string) string {
	return propertyName
}

func (DefaultStrategy) PrimaryKeyName(table TableRef, columnNames []string) string {
	return "PK_" + hashPrefix(columnsKey(table, columnNames), keyHashLen)
}

func (DefaultStrategy) UniqueConstraintName(table TableRef, columnNames []string) string {
	return "UQ_" + hashPrefix(columnsKey(table, columnNames), keyHashLen)
}

func (DefaultStrategy) RelationConstraintName(table TableRef, columnNames []string, where string) string {
	key := columnsKey(table, columnNames)
	if where != "" {
		key += "_" + where
	}
	return "REL_" + hashPrefix(key, keyHashLen)
}

func (DefaultStrategy) DefaultConstraintName(table TableRef, columnName string) string {
	return "DF_" + hashPrefix(constraintTableName(table)+"_"+columnName, keyHashLen)
}

// ForeignKeyName hashes the table and columns only; the referenced side
// does not contribute.
func (DefaultStrategy) ForeignKeyName(table TableRef, columnNames []string, referencedTablePath string, referencedColumnNames []string) string {
	return "FK_" + hashPrefix(columnsKey(table, columnNames), keyHashLen)
}

func (DefaultStrategy) IndexName(table TableRef, columnNames []string, where string) string {
	key := columnsKey(table, columnNames)
	if where != "" {
		key += "_" + where
	}
	return "IDX_" + hashPrefix(key, shortHashLen)
}

func (DefaultStrategy) CheckConstraintName(table TableRef, expression string, isEnum bool) string {
	name := "CHK_" + hashPrefix(constraintTableName(table)+"_"+expression, shortHashLen)
	if isEnum {
		return name + "_ENUM"
	}
	return name
}

func (DefaultStrategy) ExclusionConstraintName(table TableRef, expression string) string {
	return "XCL_" + hashPrefix(constraintTableName(table)+"_"+expression, shortHashLen)
}

func (DefaultStrategy) JoinColumnName(relationName, referencedColumnName string) string {
	return camelCase(relationName + "_" + referencedColumnName)
}

func (DefaultStrategy) JoinTableName(firstTableName, secondTableName, firstPropertyName, secondPropertyName string) string {
	return SnakeCase(firstTableName + "_" + strings.ReplaceAll(firstPropertyName, ".", "_") + "_" + secondTableName)
}

func (DefaultStrategy) JoinTableColumnDuplicationPrefix(columnName string, index int) string {
	return columnName + "_" + strconv.Itoa(index)
}

func (DefaultStrategy) JoinTableColumnName(tableName, propertyName, columnName string) string {
	if columnName != "" {
		return camelCase(tableName + "_" + columnName)
	}
	return camelCase(tableName + "_" + propertyName)
}

func (d DefaultStrategy) JoinTableInverseColumnName(tableName, propertyName, columnName string) string {
	return d.JoinTableColumnName(tableName, propertyName, columnName)
}

func (DefaultStrategy) ClosureJunctionTableName(originalClosureTableName string) string {
	return originalClosureTableName + "_closure"
}

func (DefaultStrategy) PrefixTableName(prefix, tableName string) string {
	return prefix + tableName
}

func (DefaultStrategy) NestedSetColumnNames() NestedSetColumns {
	return NestedSetColumns{Left: "nsleft", Right: "nsright"}
}

func (DefaultStrategy) MaterializedPathColumnName() string {
	return "mpath"
}

// constraintTableName resolves the table for hashing. Plain names keep only
// the segment after the last '.', then the first remaining '.' (possible in
// a structured name) becomes '_'.
func constraintTableName(table TableRef) string {
	name := table.Name()
	if !table.IsStructured() {
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
	}
	return strings.Replace(name, ".", "_", 1)
}

// columnsKey builds "<table>_<sorted columns>" without touching the
// caller's slice.
func columnsKey(table TableRef, columnNames []string) string {
	sorted := slices.Clone(columnNames)
	slices.Sort(sorted)
	return constraintTableName(table) + "_" + strings.Join(sorted, "_")
}

func hashPrefix(key string, n int) string {
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:n]
}
