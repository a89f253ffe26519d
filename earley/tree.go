package earley

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/syllabo"
	"github.com/npillmayer/syllabo/grammar"
)

// TreeNode is a node of a parse tree. Leaves carry the matched input
// character as payload, with the preterminal as label. Context is set for
// nodes derived by a context-gated rule.
//
// A node with an empty label signals a failed parse.
type TreeNode struct {
	Label    string
	Children []*TreeNode
	Payload  string
	Context  bool
	Extent   syllabo.Span // span of input tokens covered by this node
}

// IsEmpty is true for the failure sentinel.
func (n *TreeNode) IsEmpty() bool {
	return n == nil || n.Label == ""
}

// IsLeaf is true for nodes without children.
func (n *TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Child returns the first child with a given label, or nil.
func (n *TreeNode) Child(label string) *TreeNode {
	for _, ch := range n.Children {
		if ch.Label == label {
			return ch
		}
	}
	return nil
}

// Count counts the nodes of a tree (including n) for which pred is true.
func (n *TreeNode) Count(pred func(*TreeNode) bool) int {
	if n == nil {
		return 0
	}
	count := 0
	if pred(n) {
		count = 1
	}
	for _, ch := range n.Children {
		count += ch.Count(pred)
	}
	return count
}

// Text concatenates the payloads of all leaves below n.
func (n *TreeNode) Text() string {
	if n.IsLeaf() {
		return n.Payload
	}
	var b strings.Builder
	for _, ch := range n.Children {
		b.WriteString(ch.Text())
	}
	return b.String()
}

// String returns a tree in S-expression notation, e.g.
//
//    (TOP (S (Syll (Peak (ClassV (Phona (Chara a)))))))
//
func (n *TreeNode) String() string {
	if n.IsEmpty() {
		return "()"
	}
	if n.Payload != "" {
		return "(" + n.Label + " " + n.Payload + ")"
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Label)
	for _, ch := range n.Children {
		b.WriteByte(' ')
		b.WriteString(ch.String())
	}
	b.WriteString(")")
	return b.String()
}

// tree extracts the tree rooted at item (pos, index) by following
// backpointers. The chart is not modified.
func (p *Parser) tree(pos, index int) *TreeNode {
	it := p.chart.at(pos, index)
	if it == nil {
		stuck(fmt.Sprintf("dangling backpointer [%d,%d]", pos, index))
		return nil
	}
	node := &TreeNode{
		Label:   it.LHS,
		Context: it.Context != "",
		Extent:  it.span(),
	}
	if len(it.Back) == 0 { // scanned leaf
		if len(it.RHS) != 1 || !grammar.IsLiteral(it.RHS[0]) {
			stuck(fmt.Sprintf("item without backpointers is not a leaf: %v", it))
			return nil
		}
		if node.Extent.Len() != 1 {
			stuck(fmt.Sprintf("leaf item does not cover a single token: %v", it))
			return nil
		}
		node.Payload = grammar.Unquote(it.RHS[0])
		return node
	}
	node.Children = make([]*TreeNode, 0, len(it.Back))
	var covered syllabo.Span
	for _, bp := range it.Back {
		child := p.tree(bp.Pos, bp.Index)
		if child == nil {
			return nil
		}
		if covered.IsNull() {
			covered = child.Extent
		} else if child.Extent.From() != covered.To() {
			stuck(fmt.Sprintf("children of item are not contiguous: %v", it))
			return nil
		} else {
			covered = covered.Extend(child.Extent)
		}
		node.Children = append(node.Children, child)
	}
	if covered != node.Extent {
		stuck(fmt.Sprintf("children of item cover %s: %v", covered, it))
		return nil
	}
	return node
}

// stuck reports an inconsistency of the chart. These are never caused by user
// data, but by a bug in the grammar compiler or the parser.
func stuck(msg string) {
	tracer().Errorf("%s", msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Earley-parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}
