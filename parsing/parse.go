package parsing

import (
	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/table"
	"github.com/npillmayer/schuko/tracing"
)

// TokenIterator yields the tokens of a parse's input stream one at a
// time. Next returns ok == false once the stream is exhausted; the
// driver never calls Next again afterward. Modeled as an explicit
// optional-next operation rather than an exception/panic protocol
// (Design Notes).
type TokenIterator interface {
	Next() (token interface{}, ok bool)
}

// SliceIterator adapts a fixed slice of tokens to TokenIterator.
type SliceIterator struct {
	tokens []interface{}
	pos    int
}

// NewSliceIterator returns a TokenIterator over tokens in order.
func NewSliceIterator(tokens []interface{}) *SliceIterator {
	return &SliceIterator{tokens: tokens}
}

func (it *SliceIterator) Next() (interface{}, bool) {
	if it.pos >= len(it.tokens) {
		return nil, false
	}
	tok := it.tokens[it.pos]
	it.pos++
	return tok, true
}

// defaultBeamLimit and defaultRootProduction match the original
// implementation's parse() keyword defaults.
const (
	defaultBeamLimit      = 100
	defaultRootProduction = "ROOT"
)

type config struct {
	beamLimit      int
	rootProduction string
	trace          tracing.Trace
}

// Option configures a call to Parse.
type Option func(*config)

// WithBeamLimit overrides the number of inactive nodes retained between
// token cycles. 0 means unbounded.
func WithBeamLimit(n int) Option {
	return func(c *config) { c.beamLimit = n }
}

// WithRootProduction overrides which production's completed ParseNodes
// are returned as results.
func WithRootProduction(production string) Option {
	return func(c *config) { c.rootProduction = production }
}

// WithTracer routes the driver's step-by-step progress through t instead
// of the package's default tracer (Design Notes: "route through a
// tracing hook rather than direct stdio").
func WithTracer(t tracing.Trace) Option {
	return func(c *config) { c.trace = t }
}

func tracer() tracing.Trace {
	return tracing.Select("tokema.parsing")
}

// Parse runs the GLR*-with-noise-skipping algorithm over tokens against
// tbl, returning every surviving ParseNode whose production matches the
// requested root (default "ROOT"). An empty token stream, an input that
// never reaches the root production, or a fully ambiguous dead end all
// yield an empty (nil) result slice with no error — parse failure is not
// an error condition here (spec's error-handling policy).
func Parse(tokens TokenIterator, tbl *table.ParsingTable, opts ...Option) []*ParseNode {
	cfg := config{
		beamLimit:      defaultBeamLimit,
		rootProduction: defaultRootProduction,
		trace:          tracer(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	g := newGSS()
	position, token, ok := 0, interface{}(nil), false
	if token, ok = tokens.Next(); !ok {
		return nil
	}

	inactive := []int{0} // root
	var active []int     // LIFO

	step := 0
	for {
		step++
		cfg.trace.Debugf("step %d: shifting %v", step, token)

		// Shift phase.
		for _, nIdx := range inactive {
			n := g.at(nIdx)
			actions, meta := tbl.Actions(n.state, token)
			for _, a := range actions {
				if a.Kind != table.Shift {
					continue
				}
				childIdx := g.push(stackNode{
					state:    a.State,
					startPos: position,
					endPos:   position + 1,
					symbol:   &Symbol{Value: token, Position: position, Meta: meta},
					parent:   nIdx,
					skipped:  position - n.endPos,
				})
				inactive = append(inactive, childIdx)
				active = append(active, childIdx)
			}
		}

		cfg.trace.Debugf("step %d: reducing", step)

		// Reduce phase.
		var reductionResults []int
		for len(active) > 0 {
			nIdx := active[len(active)-1]
			active = active[:len(active)-1]
			n := g.at(nIdx)

			actions, _ := tbl.Actions(n.state, token)
			for _, a := range actions {
				if a.Kind != table.Reduce {
					continue
				}
				newIdx, ok := reduceBy(g, tbl, nIdx, a.Rule)
				if !ok {
					continue
				}
				var kept bool
				reductionResults, kept = acceptReduction(g, reductionResults, newIdx, cfg.trace)
				if kept {
					active = append(active, newIdx)
				}
			}
		}

		inactive = append(inactive, reductionResults...)

		position++
		token, ok = tokens.Next()
		if !ok {
			break
		}

		if cfg.beamLimit > 0 && len(inactive) > cfg.beamLimit {
			inactive = inactive[len(inactive)-cfg.beamLimit:]
		}
	}

	var results []*ParseNode
	for _, idx := range inactive {
		n := g.at(idx)
		pn, ok := n.symbol.(*ParseNode)
		if ok && pn.Rule.Production == cfg.rootProduction {
			results = append(results, pn)
		}
	}
	return results
}

// reduceBy walks len(rule.Queries) parent links from nIdx, collects the
// matched symbols in left-to-right order, looks up the goto state from
// the production root, and returns the new (not-yet-committed) node
// index plus whether the reduction applies. A reduction whose production
// root has no goto entry is discarded, except when that root is the arena
// root: the node is then created with no table state, carrying its tree
// but taking no further actions.
func reduceBy(g *gss, tbl *table.ParsingTable, nIdx int, rule *grammar.Rule) (int, bool) {
	k := len(rule.Queries)
	args := make([]interface{}, k)
	skipped := 0
	cur := nIdx
	for i := 0; i < k; i++ {
		n := g.at(cur)
		args[k-1-i] = n.symbol
		skipped += n.skipped
		cur = n.parent
	}
	root := g.at(cur)

	nextState, ok := tbl.Goto(root.state, rule.Production)
	if !ok {
		if cur != 0 {
			return 0, false
		}
		// The start production is referenced by no rule, so state 0 has no
		// goto for it; state -1 has no actions in the table.
		nextState = -1
	}

	leaf := g.at(nIdx)
	newIdx := g.push(stackNode{
		state:    nextState,
		startPos: root.startPos,
		endPos:   leaf.endPos,
		symbol:   &ParseNode{Rule: rule, Args: args},
		parent:   cur,
		skipped:  skipped,
	})
	return newIdx, true
}

// acceptReduction applies the local ambiguity resolution of spec §4.3:
// newIdx is rejected if a reduction already emitted this cycle shares its
// parent, carries a ParseNode and has a strictly smaller skipped count,
// so on a tie newIdx is kept. Only newIdx is judged: earlier results are
// never removed, even when newIdx skipped fewer tokens, and the
// productions of the compared nodes are not looked at. Reports whether
// newIdx was kept (and so should be appended to results and enqueued for
// further reduction); a rejected candidate is dropped entirely.
func acceptReduction(g *gss, results []int, newIdx int, trace tracing.Trace) ([]int, bool) {
	newNode := g.at(newIdx)

	kept := true
	for _, rIdx := range results {
		r := g.at(rIdx)
		if r.parent != newNode.parent {
			continue
		}
		if _, isPN := r.symbol.(*ParseNode); !isPN {
			continue
		}
		if r.skipped < newNode.skipped {
			kept = false
			trace.Debugf("new reduction skipped=%d loses to existing skipped=%d", newNode.skipped, r.skipped)
			break
		}
	}
	if kept {
		return append(results, newIdx), true
	}
	return results, false
}
