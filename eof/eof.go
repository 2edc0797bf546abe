/*
Package eof provides a special end-of-input token, query and resolver.
Using it is optional, but a grammar that uses {EOF} lets the table
builder emit reduce actions that only fire once the input is exhausted,
which is otherwise awkward to express with ordinary terminal queries.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package eof

import (
	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/table"
)

// token is the sentinel end-of-input value. It is unexported so the only
// way to produce one is Token, making token{} impossible to fabricate by
// accident from ordinary input data.
type token struct{}

func (token) String() string { return "{EOF}" }

// Token is the value a parsing.TokenIterator must yield (exactly once, as
// its last token) to signal end of input to a grammar that uses Query.
var Token = token{}

// Query is the terminal query that matches Token and nothing else.
// Because it carries no fields, every Query value compares equal to
// every other, so a grammar needs at most one.
type Query struct{}

func (Query) String() string { return "{EOF}" }
func (Query) Terminal()      {}

// Resolver adapts Query to Token. Register it alongside a grammar's other
// resolvers when building a table.ParsingTable for a grammar that
// references Query.
type Resolver struct {
	cell *table.ActionCell
}

// NewResolver returns a Resolver ready to register with table.Build.
func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	if _, ok := q.(Query); ok {
		r.cell = cell
	}
}

func (r *Resolver) Resolve(tok interface{}) (*table.ActionCell, interface{}) {
	if _, ok := tok.(token); ok {
		return r.cell, nil
	}
	return nil, nil
}
