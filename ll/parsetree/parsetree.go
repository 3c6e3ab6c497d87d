/*
Package parsetree implements parse trees as produced by the predictive parser
of package ll/predictive.

Every node of a parse tree is labeled with a grammar symbol: a non-terminal,
a terminal or ε. The children of a non-terminal node represent, left to right,
the symbols of the alternative chosen to expand it. A non-terminal expanded by
its ε-alternative has a single ε-labeled child.

A tree's string representation nests the children in parentheses:

    S(A(C(i) D(ε)) B(ε))

Reading the terminal leaves from left to right, skipping ε, reproduces the
input (see Tree.Yield).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
)

// tracer traces with key 'topdown.parser'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.parser")
}

// Node is a node of a parse tree.
type Node struct {
	Symbol      ll.Symbol
	Children    []*Node
	Alternative *ll.Alternative // alternative expanding a non-terminal node
	Token       topdown.Token   // input token matched by a terminal node
	Span        topdown.Span    // input positions covered by this node
}

// NewNode creates a leaf node for symbol sym.
func NewNode(sym ll.Symbol) *Node {
	return &Node{Symbol: sym}
}

// Expand sets the children of a non-terminal node from the symbols of alt.
// For the ε-alternative, a single ε-labeled child is created.
// The new children are returned.
func (n *Node) Expand(alt *ll.Alternative) []*Node {
	n.Alternative = alt
	if alt.IsEpsilon() {
		n.Children = []*Node{NewNode(ll.Epsilon)}
		return n.Children
	}
	n.Children = make([]*Node, alt.Len())
	for i := range n.Children {
		n.Children[i] = NewNode(alt.At(i))
	}
	return n.Children
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString(n.Symbol.String())
	if n.IsLeaf() {
		return
	}
	b.WriteByte('(')
	for i, ch := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		ch.write(b)
	}
	b.WriteByte(')')
}

// computeSpan sets the span of non-terminal nodes from their children.
// Spans of leaves are expected to be set already.
func (n *Node) computeSpan() topdown.Span {
	if n.IsLeaf() {
		return n.Span
	}
	span := n.Children[0].computeSpan()
	for _, ch := range n.Children[1:] {
		span = span.Extend(ch.computeSpan())
	}
	n.Span = span
	return span
}

// --- Trees -----------------------------------------------------------------

// Tree is a parse tree. Trees are immutable once created.
type Tree struct {
	root *Node
}

// NewTree creates a parse tree with a given root node. The spans of all
// non-terminal nodes are derived from the spans of the leaves.
func NewTree(root *Node) *Tree {
	if root != nil {
		root.computeSpan()
	}
	return &Tree{root: root}
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Leaves returns the leaves of the tree from left to right, including ε-leaves.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.Each(func(n *Node, level int) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Yield returns the terminal leaves of the tree from left to right, skipping ε.
// For a tree produced by a successful parse, this is the input.
func (t *Tree) Yield() string {
	var b strings.Builder
	for _, leaf := range t.Leaves() {
		if leaf.Symbol.IsTerminal() {
			b.WriteRune(rune(leaf.Symbol))
		}
	}
	return b.String()
}

// Each visits the nodes of the tree in pre-order (depth first, left to right).
func (t *Tree) Each(f func(n *Node, level int)) {
	if t.root != nil {
		each(t.root, 0, f)
	}
}

func each(n *Node, level int, f func(*Node, int)) {
	f(n, level)
	for _, ch := range n.Children {
		each(ch, level+1, f)
	}
}

func (t *Tree) String() string {
	if t.root == nil {
		return "<empty>"
	}
	return t.root.String()
}
