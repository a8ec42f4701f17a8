package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		dialect  Dialect
		expected string
	}{
		{"users", MySQL, "`users`"},
		{"user_data", MySQL, "`user_data`"},
		{"IDX_users_name_name IS NOT NULL", MySQL, "`IDX_users_name_name IS NOT NULL`"}, // raw predicate
		{"user`data", MySQL, "`user``data`"},                                           // backtick in name
		{"a`b`c", MySQL, "`a``b``c`"},                                                  // multiple backticks
		{"", MySQL, "``"},                                                              // empty string
		{"users", ANSI, `"users"`},
		{`IDX_t_a_a = "x"`, ANSI, `"IDX_t_a_a = ""x"""`}, // double quote in name
		{"user`data", ANSI, "\"user`data\""},             // backtick left alone
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input, tt.dialect))
		})
	}
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("MySQL")
	require.NoError(t, err)
	assert.Equal(t, MySQL, d)

	d, err = ParseDialect("ansi")
	require.NoError(t, err)
	assert.Equal(t, ANSI, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)
}
