package parsing

import (
	"io"

	"github.com/pterm/pterm"
)

// Sprint renders n as an indented tree, in the style of the teacher's
// pterm-based `tree` REPL command, walking children the way
// lr/sppf's visitor does (depth-first, left to right).
func Sprint(n *ParseNode) string {
	root := treeNodeOf(n)
	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return n.String()
	}
	return s
}

// Fprint writes Sprint(n) to w.
func Fprint(w io.Writer, n *ParseNode) error {
	_, err := io.WriteString(w, Sprint(n))
	return err
}

func treeNodeOf(sym interface{}) pterm.TreeNode {
	switch v := sym.(type) {
	case *ParseNode:
		children := make([]pterm.TreeNode, len(v.Args))
		for i, a := range v.Args {
			children[i] = treeNodeOf(a)
		}
		return pterm.TreeNode{Text: v.Rule.Production, Children: children}
	case *Symbol:
		return pterm.TreeNode{Text: v.String()}
	default:
		return pterm.TreeNode{Text: "nil"}
	}
}
