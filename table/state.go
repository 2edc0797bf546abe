package table

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/mirelson/tokema/grammar"
)

// CFSMState is an LR(0) item set with an integer id: one state of the
// characteristic finite state machine built for a grammar. State equality
// is item-set equality (spec §3); the ID is unique within the CFSM that
// produced it but carries no meaning beyond identifying transitions.
type CFSMState struct {
	ID    int
	Items []Item
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("state %d (%d items)", s.ID, len(s.Items))
}

// cfsmEdge is a transition between two states, labeled with the query that
// triggers it (a terminal query for a shift edge, a reference query for a
// goto edge).
type cfsmEdge struct {
	from, to int
	query    grammar.Query
}

// cfsm is the characteristic finite state machine for a grammar: the set
// of all LR(0) states plus the transitions between them. It is built once
// by buildCFSM and then consumed by emitActions to produce a ParsingTable.
type cfsm struct {
	states []*CFSMState
	byKey  map[string]*CFSMState
	edges  *arraylist.List
}

func stateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*CFSMState).ID, b.(*CFSMState).ID)
}

// canonicalKey content-hashes a closed item set for state de-duplication.
// Items are sorted by (rule serial, dot) first so that the same item set
// presented in a different order hashes identically, matching the spec's
// "equality on states is set-equality of items; the ordered-tuple
// representation is a hashing optimization, not a semantic constraint."
func canonicalKey(items []Item) string {
	keys := make([]itemKey, len(items))
	for i, it := range items {
		keys[i] = keyOf(it)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].serial != keys[j].serial {
			return keys[i].serial < keys[j].serial
		}
		return keys[i].dot < keys[j].dot
	})
	h, err := structhash.Hash(keys, 1)
	if err != nil {
		// structhash.Hash only fails for unsupported reflect kinds; keys
		// is a plain []itemKey of two ints, which it always supports.
		panic(fmt.Sprintf("table: unexpected structhash failure: %v", err))
	}
	return h
}

func newCFSM() *cfsm {
	return &cfsm{byKey: make(map[string]*CFSMState), edges: arraylist.New()}
}

// addStateDedup adds a (closed) item set as a state unless an identical
// item set is already present, in which case the existing state is
// returned and isNew is false.
func (c *cfsm) addStateDedup(items []Item) (state *CFSMState, isNew bool) {
	key := canonicalKey(items)
	if s, ok := c.byKey[key]; ok {
		return s, false
	}
	s := &CFSMState{ID: len(c.states), Items: items}
	c.states = append(c.states, s)
	c.byKey[key] = s
	return s, true
}

// buildCFSM constructs the characteristic finite state machine for a
// grammar (spec §4.2 steps 2-3). State 0 is always the closure of the
// start items of every rule for the first rule's production, so each
// alternative of the start production is reachable.
func buildCFSM(rules *grammar.RuleSet) (*cfsm, error) {
	if rules.Len() == 0 {
		return nil, fmt.Errorf("table: cannot build a table from an empty rule set")
	}
	var seed []Item
	for _, r := range rules.RulesFor(rules.Start()) {
		seed = append(seed, Item{Rule: r, Dot: 0})
	}
	startItems := closure(rules, seed)

	c := newCFSM()
	s0, _ := c.addStateDedup(startItems)
	tracer().Debugf("=== build CFSM ===")
	tracer().Debugf("start state %s", s0)

	pending := treeset.NewWith(stateComparator)
	pending.Add(s0)
	for pending.Size() > 0 {
		s := pending.Values()[0].(*CFSMState)
		pending.Remove(s)
		for _, sym := range distinctSymbolsAfterDot(s.Items) {
			advanced := gotoItems(s.Items, sym)
			if len(advanced) == 0 {
				continue
			}
			closed := closure(rules, advanced)
			next, isNew := c.addStateDedup(closed)
			c.edges.Add(cfsmEdge{from: s.ID, to: next.ID, query: sym})
			tracer().Debugf("goto(%s, %v) -> %s", s, sym, next)
			if isNew {
				pending.Add(next)
			}
		}
	}
	return c, nil
}
