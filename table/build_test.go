package table

import (
	"testing"

	"github.com/mirelson/tokema/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// literalQuery is a minimal TerminalQuery used only by this package's own
// tests, standing in for the richer query kinds package text provides.
type literalQuery struct{ text string }

func (l literalQuery) String() string { return l.text }
func (l literalQuery) Terminal()      {}

// literalResolver resolves tokens that are exactly equal to a registered
// literalQuery's text.
type literalResolver struct {
	cells map[string]*ActionCell
}

func newLiteralResolver() *literalResolver {
	return &literalResolver{cells: make(map[string]*ActionCell)}
}

func (r *literalResolver) Register(q grammar.TerminalQuery, cell *ActionCell) {
	lq, ok := q.(literalQuery)
	if !ok {
		return
	}
	r.cells[lq.text] = cell
}

func (r *literalResolver) Resolve(token interface{}) (*ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	return r.cells[s], nil
}

func lit(s string) grammar.TerminalQuery { return literalQuery{s} }

func ref(s string) grammar.Query { return grammar.ReferenceQuery{Reference: s} }

// arithmeticGrammar is the classically ambiguous expression grammar
// E -> E + E | E * E | id.
func arithmeticGrammar() *grammar.RuleSet {
	return grammar.NewRuleSet(
		grammar.NewRule("E", ref("E"), lit("+"), ref("E")),
		grammar.NewRule("E", ref("E"), lit("*"), ref("E")),
		grammar.NewRule("E", lit("id")),
	)
}

func TestBuildCFSMStateCount(t *testing.T) {
	rules := arithmeticGrammar()
	c, err := buildCFSM(rules)
	if err != nil {
		t.Fatalf("buildCFSM: %v", err)
	}
	if len(c.states) == 0 {
		t.Fatal("expected at least one state")
	}
	if c.states[0].ID != 0 {
		t.Fatalf("start state ID = %d, want 0", c.states[0].ID)
	}
}

func TestBuildProducesConflictsForAmbiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokema.table")
	defer teardown()

	rules := arithmeticGrammar()
	resolver := newLiteralResolver()
	pt, err := Build(rules, []Resolver{resolver})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !pt.HasConflicts {
		t.Fatal("expected the classically-ambiguous E -> E+E | E*E | id grammar to report conflicts")
	}
	if pt.StateCount == 0 {
		t.Fatal("expected a non-empty table")
	}
}

func TestBuildUnambiguousGrammarHasNoConflicts(t *testing.T) {
	rules := grammar.NewRuleSet(
		grammar.NewRule("S", ref("A"), ref("B")),
		grammar.NewRule("A", lit("a")),
		grammar.NewRule("B", lit("b")),
	)
	resolver := newLiteralResolver()
	pt, err := Build(rules, []Resolver{resolver})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pt.HasConflicts {
		t.Fatal("did not expect conflicts for an unambiguous grammar")
	}

	actions, _ := pt.Actions(pt.StartState(), "a")
	if len(actions) != 1 || actions[0].Kind != Shift {
		t.Fatalf("Actions(start, %q) = %v, want a single shift", "a", actions)
	}
}

func TestBuildRejectsEmptyRuleSet(t *testing.T) {
	rules := grammar.NewRuleSet()
	if _, err := Build(rules, nil); err == nil {
		t.Fatal("expected an error building a table from an empty rule set")
	}
}

func TestEmitActionsRegistersGotoEdges(t *testing.T) {
	rules := grammar.NewRuleSet(
		grammar.NewRule("S", ref("A")),
		grammar.NewRule("A", lit("a")),
	)
	resolver := newLiteralResolver()
	pt, err := Build(rules, []Resolver{resolver})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	actions, _ := pt.Actions(pt.StartState(), "a")
	if len(actions) != 1 || actions[0].Kind != Shift {
		t.Fatalf("unexpected actions for shift of 'a': %v", actions)
	}
	if _, ok := pt.Goto(pt.StartState(), "A"); !ok {
		t.Fatalf("expected a goto entry for production A from state %d", pt.StartState())
	}
}
