/*
Package grammar implements the value types that describe a context-free
grammar for package table and package parsing: rules built from an ordered
sequence of queries.

Unlike a conventional LR grammar, terminals here are not fixed symbol
identifiers but queries: predicate-like objects that decide at table-build
time whether they will claim a given input token, and at resolve time
whether a particular token matches. See package table for the resolver
machinery that connects queries to input tokens, and package text / package
eof for the built-in query kinds.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"fmt"
	"strings"
)

// Query is implemented by both TerminalQuery and ReferenceQuery. It is the
// element type of a Rule's body.
//
// Queries are compared structurally: two queries of the same concrete type
// with the same field values are considered the same grammar symbol by the
// table builder. Implementations must therefore be comparable Go values
// (no slices, maps, or funcs inside) so that Go's native == and map-key
// semantics give the structural equality the table builder relies on.
type Query interface {
	fmt.Stringer
}

// TerminalQuery is a Query that matches an input token at parse time via a
// table.Resolver registered for it. The interface is intentionally narrow
// (a single marker method beyond Query) so that only types deliberately
// written to participate in this contract can be used as grammar
// terminals, while remaining open to extension: any package may define a
// new comparable struct type implementing TerminalQuery, pair it with a
// table.Resolver, and use it as a rule body element.
type TerminalQuery interface {
	Query
	// Terminal is a marker distinguishing a TerminalQuery from a bare
	// ReferenceQuery; its return value carries no meaning.
	Terminal()
}

// ReferenceQuery is a named back-reference to another production. Two
// ReferenceQuery values are equal iff their Reference names are equal.
type ReferenceQuery struct {
	Reference string
}

// String renders a reference the way the BNF grammar reader accepts it
// back, e.g. "<NP>".
func (r ReferenceQuery) String() string {
	return fmt.Sprintf("<%s>", r.Reference)
}

// Rule is a single production: a name (the LHS) plus an ordered,
// non-empty body of queries. Rules are immutable after construction and
// are shared read-only by every table and parse built from them.
type Rule struct {
	Production string
	Queries    []Query

	// serial is a stable ordinal assigned by NewRuleSet (-1 until then), used as
	// the comparable component of an Item key instead of hashing the rule
	// body on every lookup.
	serial int
}

// NewRule constructs a Rule. It panics if production is empty or queries is
// empty — both are invariants of the data model (spec §3), not user-data
// errors, so they are asserted rather than threaded through as an error
// return; callers building rules from trusted Go code are expected to
// satisfy them directly, while the text.ParseRulesFromString reader
// validates user-supplied grammar text before ever calling NewRule.
func NewRule(production string, queries ...Query) *Rule {
	if production == "" {
		panic("grammar: rule production name must not be empty")
	}
	if len(queries) == 0 {
		panic("grammar: rule body must not be empty")
	}
	return &Rule{Production: production, Queries: queries, serial: -1}
}

// Serial returns the rule's assignment-order ordinal within the RuleSet it
// was registered with, or -1 if it has not been registered with one.
func (r *Rule) Serial() int {
	if r == nil {
		return -1
	}
	return r.serial
}

func (r *Rule) String() string {
	parts := make([]string, len(r.Queries))
	for i, q := range r.Queries {
		parts[i] = q.String()
	}
	return fmt.Sprintf("%s = %s", r.Production, strings.Join(parts, " "))
}

// RuleSet is an ordered collection of rules, fixed when NewRuleSet builds
// it. The first rule added is conventionally the start rule: table.Build
// builds its start state from that rule's production, and parsing.Parse
// reports parses of "ROOT" unless given an explicit override.
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet builds a RuleSet from rules in order, assigning each an
// incrementing Serial so table construction can use (serial, dot) as a
// plain comparable Item key.
func NewRuleSet(rules ...*Rule) *RuleSet {
	rs := &RuleSet{rules: make([]*Rule, len(rules))}
	for i, r := range rules {
		r.serial = i
		rs.rules[i] = r
	}
	return rs
}

// Rules returns the rules in registration order.
func (rs *RuleSet) Rules() []*Rule {
	return rs.rules
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Start returns the first rule's production, the conventional start
// production of the grammar.
func (rs *RuleSet) Start() string {
	if len(rs.rules) == 0 {
		return ""
	}
	return rs.rules[0].Production
}

// RulesFor returns every rule whose LHS production matches name, in
// registration order.
func (rs *RuleSet) RulesFor(name string) []*Rule {
	var out []*Rule
	for _, r := range rs.rules {
		if r.Production == name {
			out = append(out, r)
		}
	}
	return out
}
