package text

import (
	"github.com/mirelson/tokema/eof"
	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/table"
)

// BuildParsingTable compiles rules into a table.ParsingTable wired with
// the standard text resolvers (exact and case-insensitive literal text,
// int, float, and EOF), plus any additional resolvers supplied — useful
// for a caller that also wants LevenshteinTextResolver, or a
// domain-specific query kind of its own.
func BuildParsingTable(rules *grammar.RuleSet, additional ...table.Resolver) (*table.ParsingTable, error) {
	resolvers := []table.Resolver{
		NewExactTextResolver(),
		NewCaseInsensitiveTextResolver(),
		NewIntResolver(),
		NewFloatResolver(),
		eof.NewResolver(),
	}
	resolvers = append(resolvers, additional...)
	return table.Build(rules, resolvers)
}
