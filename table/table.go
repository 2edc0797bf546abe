package table

import (
	"fmt"

	"github.com/mirelson/tokema/grammar"
)

// ActionKind tags an Action as a shift or a reduce.
type ActionKind int

const (
	// Shift moves the dot past a terminal query, pushing the matched
	// token and advancing to Action.State.
	Shift ActionKind = iota
	// Reduce folds the top of a configuration's stack into a ParseNode
	// for Action.Rule.
	Reduce
)

// Action is a tagged union: Shift(state) or Reduce(rule). Unlike a
// classical LR table, a single (state, query) cell may legally hold more
// than one Action — shift/reduce and reduce/reduce conflicts are not
// errors here (spec §4.2); the GLR* driver in package parsing forks a
// configuration per Action it finds.
type Action struct {
	Kind  ActionKind
	State int // valid when Kind == Shift
	Rule  *grammar.Rule // valid when Kind == Reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift(%d)", a.State)
	case Reduce:
		return fmt.Sprintf("reduce(%s)", a.Rule)
	default:
		return "<invalid action>"
	}
}

// ActionCell is the per-terminal-query action map: state -> actions. A
// Resolver is handed a query's ActionCell at registration time and the
// same cell again (looked up by resolving a token) at parse time; the
// cell's contents never change once table.Build returns.
type ActionCell struct {
	byState map[int][]Action
}

func newActionCell() *ActionCell {
	return &ActionCell{byState: make(map[int][]Action)}
}

// Actions returns the actions registered for state, or nil if there are
// none.
func (c *ActionCell) Actions(state int) []Action {
	if c == nil {
		return nil
	}
	return c.byState[state]
}

// add appends an action for state, reporting whether this was already the
// second (or later) action recorded for that state — i.e. whether this
// addition created a shift/reduce or reduce/reduce conflict.
func (c *ActionCell) add(state int, a Action) bool {
	existing := c.byState[state]
	c.byState[state] = append(existing, a)
	return len(existing) > 0
}

// Resolver adapts terminal queries to input tokens. Register is offered
// every terminal query during table construction; a resolver decides
// whether (and under what index) to remember it. Resolve is called during
// parsing with an input token and must return the ActionCell that query
// claims this token, plus optional metadata (e.g. a parsed numeric value)
// to attach to the resulting parsing.Symbol. Resolve must be pure with
// respect to the set of queries registered via Register — no resolver
// mutates its index once table.Build has returned.
type Resolver interface {
	Register(query grammar.TerminalQuery, cell *ActionCell)
	Resolve(token interface{}) (cell *ActionCell, meta interface{})
}

type gotoKey struct {
	state      int
	production string
}

// ParsingTable is a compiled grammar: a goto map plus, per terminal query,
// an action map, together with the resolvers that will later translate
// input tokens into table lookups. Once returned by Build, a ParsingTable
// is immutable and safe to share across concurrent parses.
type ParsingTable struct {
	goTo         map[gotoKey]int
	cells        map[grammar.TerminalQuery]*ActionCell
	resolvers    []Resolver
	StateCount   int
	HasConflicts bool
}

// StartState is always 0: table.Build always assigns that ID to the
// closure of the start items of the start production's rules.
func (pt *ParsingTable) StartState() int { return 0 }

// Goto returns the state reached from state via production, if any.
func (pt *ParsingTable) Goto(state int, production string) (int, bool) {
	s, ok := pt.goTo[gotoKey{state: state, production: production}]
	return s, ok
}

// Actions resolves token against every registered resolver in order and
// returns the actions available for state under the first resolver that
// claims the token, plus any metadata that resolver attached. Returns
// (nil, nil) if no resolver claims the token.
func (pt *ParsingTable) Actions(state int, token interface{}) ([]Action, interface{}) {
	for _, r := range pt.resolvers {
		cell, meta := r.Resolve(token)
		if cell != nil {
			return cell.Actions(state), meta
		}
	}
	return nil, nil
}

func (pt *ParsingTable) registerQuery(q grammar.TerminalQuery) *ActionCell {
	if cell, ok := pt.cells[q]; ok {
		return cell
	}
	cell := newActionCell()
	pt.cells[q] = cell
	for _, r := range pt.resolvers {
		r.Register(q, cell)
	}
	return cell
}

func (pt *ParsingTable) setGoto(state int, production string, next int) {
	pt.goTo[gotoKey{state: state, production: production}] = next
}

// addAction records an action for (state, query), returning true if it
// created a conflict (a second or later action for that cell).
func (pt *ParsingTable) addAction(state int, q grammar.TerminalQuery, a Action) bool {
	cell := pt.cells[q]
	if cell == nil {
		cell = pt.registerQuery(q)
	}
	return cell.add(state, a)
}
