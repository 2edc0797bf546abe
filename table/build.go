package table

import (
	"fmt"

	"github.com/mirelson/tokema/grammar"
)

// distinctTerminalQueries collects, in first-seen order, every distinct
// TerminalQuery appearing anywhere in rules' bodies.
func distinctTerminalQueries(rules *grammar.RuleSet) []grammar.TerminalQuery {
	var out []grammar.TerminalQuery
	seen := make(map[grammar.TerminalQuery]bool)
	for _, r := range rules.Rules() {
		for _, q := range r.Queries {
			tq, ok := q.(grammar.TerminalQuery)
			if !ok || seen[tq] {
				continue
			}
			seen[tq] = true
			out = append(out, tq)
		}
	}
	return out
}

// emitActions walks the built CFSM and populates pt with every shift,
// reduce and goto entry the grammar implies (spec §4.2 step 4).
//
// Reduce actions are emitted for every completed item under every
// terminal query in the grammar, not just the query's own follow set:
// "Implementers must not 'improve' this by computing follow sets" — the
// noise-skipping driver in package parsing depends on reduce actions
// being available even where a classical LR table would stay silent, so
// that it can choose to skip a token rather than fail outright.
func emitActions(rules *grammar.RuleSet, c *cfsm, pt *ParsingTable) bool {
	hasConflicts := false

	terminals := distinctTerminalQueries(rules)
	for _, tq := range terminals {
		pt.registerQuery(tq)
	}

	for _, s := range c.states {
		for _, it := range s.Items {
			if !it.AtEnd() {
				continue
			}
			for _, tq := range terminals {
				if pt.addAction(s.ID, tq, Action{Kind: Reduce, Rule: it.Rule}) {
					hasConflicts = true
					tracer().Debugf("conflict: state %d, query %v, reduce(%s)", s.ID, tq, it.Rule)
				}
			}
		}
	}

	edges := c.edges.Values()
	for _, v := range edges {
		e := v.(cfsmEdge)
		switch q := e.query.(type) {
		case grammar.ReferenceQuery:
			pt.setGoto(e.from, q.Reference, e.to)
		case grammar.TerminalQuery:
			if pt.addAction(e.from, q, Action{Kind: Shift, State: e.to}) {
				hasConflicts = true
				tracer().Debugf("conflict: state %d, query %v, shift(%d)", e.from, q, e.to)
			}
		default:
			panic(fmt.Sprintf("table: edge query %v is neither a ReferenceQuery nor a TerminalQuery", e.query))
		}
	}

	return hasConflicts
}

// Build compiles rules into a ParsingTable, registering every terminal
// query found in rules with every resolver in resolvers (in order — the
// first resolver whose Resolve claims an input token at parse time wins,
// per ParsingTable.Actions). Build returns an error only if rules is
// empty; conflicting shift/reduce or reduce/reduce actions are recorded
// via HasConflicts rather than rejected (spec's Open Question 1).
func Build(rules *grammar.RuleSet, resolvers []Resolver) (*ParsingTable, error) {
	c, err := buildCFSM(rules)
	if err != nil {
		return nil, err
	}

	pt := &ParsingTable{
		goTo:       make(map[gotoKey]int),
		cells:      make(map[grammar.TerminalQuery]*ActionCell),
		resolvers:  resolvers,
		StateCount: len(c.states),
	}
	pt.HasConflicts = emitActions(rules, c, pt)
	tracer().Infof("built table: %d states, conflicts=%v", pt.StateCount, pt.HasConflicts)
	return pt, nil
}
