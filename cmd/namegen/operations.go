package main

import (
	"fmt"
	"strings"

	"better-naming/naming"
)

type operation struct {
	name    string
	usage   string
	minArgs int
	maxArgs int
	eval    func(s naming.Strategy, args []string) string
}

var operations = []operation{
	{
		name:    "table",
		usage:   "table <className> [customName]",
		minArgs: 1, maxArgs: 2,
		eval: func(s naming.Strategy, a []string) string {
			return s.TableName(a[0], arg(a, 1))
		},
	},
	{
		name:    "column",
		usage:   "column <propertyName> [customName] [embeddedPrefixes]",
		minArgs: 1, maxArgs: 3,
		eval: func(s naming.Strategy, a []string) string {
			return s.ColumnName(a[0], arg(a, 1), splitList(arg(a, 2)))
		},
	},
	{
		name:    "relation",
		usage:   "relation <propertyName>",
		minArgs: 1, maxArgs: 1,
		eval: func(s naming.Strategy, a []string) string {
			return s.RelationName(a[0])
		},
	},
	{
		name:    "join-column",
		usage:   "join-column <relationName> <referencedColumnName>",
		minArgs: 2, maxArgs: 2,
		eval: func(s naming.Strategy, a []string) string {
			return s.JoinColumnName(a[0], a[1])
		},
	},
	{
		name:    "join-table",
		usage:   "join-table <firstTable> <secondTable> <firstProperty> [secondProperty]",
		minArgs: 3, maxArgs: 4,
		eval: func(s naming.Strategy, a []string) string {
			return s.JoinTableName(a[0], a[1], a[2], arg(a, 3))
		},
	},
	{
		name:    "join-table-column",
		usage:   "join-table-column <tableName> <propertyName> [columnName]",
		minArgs: 2, maxArgs: 3,
		eval: func(s naming.Strategy, a []string) string {
			return s.JoinTableColumnName(a[0], a[1], arg(a, 2))
		},
	},
	{
		name:    "pk",
		usage:   "pk <table> <columns>",
		minArgs: 2, maxArgs: 2,
		eval: func(s naming.Strategy, a []string) string {
			return s.PrimaryKeyName(naming.TableName(a[0]), splitList(a[1]))
		},
	},
	{
		name:    "unique",
		usage:   "unique <table> <columns>",
		minArgs: 2, maxArgs: 2,
		eval: func(s naming.Strategy, a []string) string {
			return s.UniqueConstraintName(naming.TableName(a[0]), splitList(a[1]))
		},
	},
	{
		name:    "index",
		usage:   "index <table> <columns> [where]",
		minArgs: 2, maxArgs: 3,
		eval: func(s naming.Strategy, a []string) string {
			return s.IndexName(naming.TableName(a[0]), splitList(a[1]), arg(a, 2))
		},
	},
	{
		name:    "fk",
		usage:   "fk <table> <columns> [referencedTable] [referencedColumns]",
		minArgs: 2, maxArgs: 4,
		eval: func(s naming.Strategy, a []string) string {
			return s.ForeignKeyName(naming.TableName(a[0]), splitList(a[1]), arg(a, 2), splitList(arg(a, 3)))
		},
	},
}

// evaluate runs the operation named by args[0] with the remaining args.
func evaluate(s naming.Strategy, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: missing operation", errUsage)
	}
	for _, op := range operations {
		if op.name != args[0] {
			continue
		}
		rest := args[1:]
		if len(rest) < op.minArgs || len(rest) > op.maxArgs {
			return "", fmt.Errorf("%w: %s", errUsage, op.usage)
		}
		return op.eval(s, rest), nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", errUsage, args[0])
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// splitList splits a comma separated list; "" is the empty list.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
