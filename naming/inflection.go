package naming

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Pluralize pluralizes the last underscore-separated word of a snake case
// name. Custom overrides are checked first, then the inflection library.
// Example: "order_item" -> "order_items", "person" -> "people"
func (r *Readable) Pluralize(name string) string {
	i := strings.LastIndex(name, "_")
	head, word := name[:i+1], name[i+1:]
	if override, ok := r.pluralOverrides[word]; ok {
		return head + override
	}
	return head + inflection.Plural(word)
}
