package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStrategy_TableName(t *testing.T) {
	d := DefaultStrategy{}

	assert.Equal(t, "test_table_name", d.TableName("TestTableName", ""))
	assert.Equal(t, "TestTableName", d.TableName("TestTableName", "TestTableName"))
}

func TestDefaultStrategy_ColumnName(t *testing.T) {
	d := DefaultStrategy{}

	tests := []struct {
		name     string
		property string
		custom   string
		prefixes []string
		expected string
	}{
		{"verbatim", "testColumnName", "", nil, "testColumnName"},
		{"custom name", "testColumnName", "col", nil, "col"},
		{"embedded prefixes", "name", "", []string{"author", "profile"}, "authorProfileName"},
		{"embedded prefixes title case", "firstName", "", []string{"author"}, "authorFirstname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.ColumnName(tt.property, tt.custom, tt.prefixes))
		})
	}
}

func TestDefaultStrategy_JoinNames(t *testing.T) {
	d := DefaultStrategy{}

	assert.Equal(t, "authorId", d.JoinColumnName("author", "id"))
	assert.Equal(t, "first_table_first_property_name_second_table",
		d.JoinTableName("firstTable", "secondTable", "first.propertyName", "secondProperty"))
	assert.Equal(t, "usersId", d.JoinTableColumnName("users", "id", ""))
	assert.Equal(t, "usersUserId", d.JoinTableColumnName("users", "id", "user_id"))
	assert.Equal(t, "usersId", d.JoinTableInverseColumnName("users", "id", ""))
	assert.Equal(t, "user_id_2", d.JoinTableColumnDuplicationPrefix("user_id", 2))
}

func TestDefaultStrategy_ConstraintNames(t *testing.T) {
	d := DefaultStrategy{}

	assert.Equal(t, "PK_cd6c7d74544015746c56d5ec8d3", d.PrimaryKeyName(TableName("testTable"), []string{"id", "name"}))
	assert.Equal(t, "UQ_97672ac88f789774dd47f7c8be3", d.UniqueConstraintName(TableName("users"), []string{"email"}))
	assert.Equal(t, "IDX_0566781c6ad5f6ad9b5a15074f", d.IndexName(TableName("users"), []string{"name"}, "name IS NOT NULL"))
	assert.Equal(t, "DF_c9b5b525a96ddc2c5647d7f7fa5", d.DefaultConstraintName(TableName("users"), "created_at"))
	assert.Equal(t, "CHK_b44deaca517c1c26cb21ce7c43", d.CheckConstraintName(TableName("users"), "status IN ('a','b')", false))
	assert.Equal(t, "CHK_b44deaca517c1c26cb21ce7c43_ENUM", d.CheckConstraintName(TableName("users"), "status IN ('a','b')", true))
}

func TestDefaultStrategy_ConstraintNameShape(t *testing.T) {
	d := DefaultStrategy{}
	table := TableName("users")
	cols := []string{"name"}

	assert.Len(t, d.PrimaryKeyName(table, cols), len("PK_")+keyHashLen)
	assert.Len(t, d.ForeignKeyName(table, cols, "", nil), len("FK_")+keyHashLen)
	assert.Len(t, d.RelationConstraintName(table, cols, ""), len("REL_")+keyHashLen)
	assert.Len(t, d.IndexName(table, cols, ""), len("IDX_")+shortHashLen)
	assert.Len(t, d.ExclusionConstraintName(table, "EXCLUDE (name WITH =)"), len("XCL_")+shortHashLen)
}

func TestDefaultStrategy_SortsColumns(t *testing.T) {
	d := DefaultStrategy{}
	table := TableName("users")
	cols := []string{"name", "id"}

	assert.Equal(t, d.PrimaryKeyName(table, []string{"id", "name"}), d.PrimaryKeyName(table, cols))
	assert.Equal(t, []string{"name", "id"}, cols, "caller slice must not be reordered")
}

func TestDefaultStrategy_TableResolution(t *testing.T) {
	d := DefaultStrategy{}
	cols := []string{"id"}

	assert.Equal(t, d.PrimaryKeyName(TableName("users"), cols), d.PrimaryKeyName(TableName("public.users"), cols))
	assert.Equal(t, d.PrimaryKeyName(TableName("users"), cols), d.PrimaryKeyName(TableOf(&Table{Name: "users"}), cols))
	assert.Equal(t, d.PrimaryKeyName(TableName("public_users"), cols), d.PrimaryKeyName(TableOf(&Table{Name: "public.users"}), cols))
}

func TestDefaultStrategy_ForeignKeyIgnoresReferencedSide(t *testing.T) {
	d := DefaultStrategy{}
	table := TableName("posts")
	cols := []string{"author_id"}

	assert.Equal(t,
		d.ForeignKeyName(table, cols, "", nil),
		d.ForeignKeyName(table, cols, "users", []string{"id"}),
	)
}

func TestDefaultStrategy_TreeNames(t *testing.T) {
	d := DefaultStrategy{}

	assert.Equal(t, "category_closure", d.ClosureJunctionTableName("category"))
	assert.Equal(t, "app_users", d.PrefixTableName("app_", "users"))
	assert.Equal(t, NestedSetColumns{Left: "nsleft", Right: "nsright"}, d.NestedSetColumnNames())
	assert.Equal(t, "mpath", d.MaterializedPathColumnName())
}
