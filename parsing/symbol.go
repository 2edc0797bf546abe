/*
Package parsing implements the GLR* driver: a generalized shift-reduce
parser over a table.ParsingTable that tolerates noise — input spans no
rule accepts — by skipping them and preferring, among ambiguous local
reductions, the one that skipped the fewest tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parsing

import (
	"fmt"

	"github.com/mirelson/tokema/grammar"
)

// Symbol is a shifted input token tagged with its stream position and any
// metadata a resolver attached (e.g. a parsed numeric value).
type Symbol struct {
	Value    interface{}
	Position int
	Meta     interface{}
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%v", s.Value)
}

// ParseNode is an interior tree node produced by a reduction: the rule
// that fired, plus the ordered children (each a *Symbol or a *ParseNode)
// that matched the rule's body.
type ParseNode struct {
	Rule *grammar.Rule
	Args []interface{} // each element is *Symbol or *ParseNode
}

func (n *ParseNode) String() string {
	parts := make([]interface{}, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a
	}
	return fmt.Sprintf("%s%v", n.Rule.Production, parts)
}
