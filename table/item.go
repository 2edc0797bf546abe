package table

import (
	"fmt"
	"strings"

	"github.com/mirelson/tokema/grammar"
)

// Item is a "dotted" rule: how far a parse has progressed through one
// rule's body. Dot ranges over 0..len(Rule.Queries) inclusive. Item is a
// plain comparable struct (Rule is compared by pointer identity, which is
// stable for the lifetime of a RuleSet), so it can be used directly as a
// Go map key.
type Item struct {
	Rule *grammar.Rule
	Dot  int
}

// PeekQuery returns the query immediately after the dot, or nil if the dot
// has reached the end of the rule's body.
func (i Item) PeekQuery() grammar.Query {
	if i.Rule == nil || i.Dot >= len(i.Rule.Queries) {
		return nil
	}
	return i.Rule.Queries[i.Dot]
}

// Advance returns the item with the dot moved one query to the right.
func (i Item) Advance() Item {
	return Item{Rule: i.Rule, Dot: i.Dot + 1}
}

// AtEnd reports whether the dot has reached the end of the rule's body,
// i.e. this item represents a completed parse of its rule.
func (i Item) AtEnd() bool {
	return i.PeekQuery() == nil
}

func (i Item) String() string {
	var b strings.Builder
	for idx, q := range i.Rule.Queries {
		if idx == i.Dot {
			b.WriteString("• ")
		}
		b.WriteString(q.String())
		b.WriteByte(' ')
	}
	if i.Dot == len(i.Rule.Queries) {
		b.WriteString("•")
	}
	return fmt.Sprintf("%s = %s", i.Rule.Production, strings.TrimSpace(b.String()))
}

// itemKey is the part of an Item that is comparable and orderable without
// touching the rule's body: a rule's assignment-order serial plus the dot
// position. Two items with the same key are the same item for closure and
// state-equality purposes (spec §3: "equal iff both fields equal").
type itemKey struct {
	serial int
	dot    int
}

func keyOf(i Item) itemKey {
	return itemKey{serial: i.Rule.Serial(), dot: i.Dot}
}

// closure computes the closure of a seed item set: while any item
// [A -> alpha . B beta] with B a reference query has a rule [B -> . gamma]
// not yet present, it is added, recursively (spec §4.2 step 2).
func closure(rules *grammar.RuleSet, seed []Item) []Item {
	seen := make(map[itemKey]bool, len(seed)*2)
	items := make([]Item, 0, len(seed)*2)
	for _, it := range seed {
		k := keyOf(it)
		if !seen[k] {
			seen[k] = true
			items = append(items, it)
		}
	}
	for i := 0; i < len(items); i++ {
		ref, ok := items[i].PeekQuery().(grammar.ReferenceQuery)
		if !ok {
			continue
		}
		for _, r := range rules.RulesFor(ref.Reference) {
			ni := Item{Rule: r, Dot: 0}
			k := keyOf(ni)
			if !seen[k] {
				seen[k] = true
				items = append(items, ni)
				tracer().Debugf("closure: added %s", ni)
			}
		}
	}
	return items
}

// gotoItems advances the dot past sym in every item of items where sym was
// the expected query, discarding items where it was not (spec §4.2 step 3,
// "for each such X, form the goto set").
func gotoItems(items []Item, sym grammar.Query) []Item {
	var out []Item
	for _, it := range items {
		if q := it.PeekQuery(); q != nil && q == sym {
			out = append(out, it.Advance())
		}
	}
	return out
}

// distinctSymbolsAfterDot returns, in first-seen order, every distinct
// query appearing immediately after the dot across items.
func distinctSymbolsAfterDot(items []Item) []grammar.Query {
	var out []grammar.Query
	seen := make(map[grammar.Query]bool)
	for _, it := range items {
		q := it.PeekQuery()
		if q == nil || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}
