package parsetree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/stretchr/testify/assert"
)

// makeTree builds the tree for input "i" by hand:
//
//     S(A(C(i) D(ε)) B(ε))
//
func makeTree(t *testing.T) *Tree {
	g, err := ll.NewGrammar("G", "SABCD", "+*i", 'S')
	if err != nil {
		t.Fatal(err)
	}
	S, _ := g.AddProduction('S', "AB")
	A, _ := g.AddProduction('A', "CD")
	Beps, _ := g.AddProduction('B', "eps")
	C, _ := g.AddProduction('C', "i")
	Deps, _ := g.AddProduction('D', "eps")
	root := NewNode('S')
	sch := root.Expand(S)
	ach := sch[0].Expand(A)
	ich := ach[0].Expand(C)
	ich[0].Span = topdown.Span{0, 1}
	dch := ach[1].Expand(Deps)
	dch[0].Span = topdown.Span{1, 1}
	bch := sch[1].Expand(Beps)
	bch[0].Span = topdown.Span{1, 1}
	return NewTree(root)
}

func TestTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.parser")
	defer teardown()
	//
	tree := makeTree(t)
	assert.Equal(t, "S(A(C(i) D(ε)) B(ε))", tree.String())
	assert.Equal(t, "i", tree.Yield())
	assert.Len(t, tree.Leaves(), 3)
	assert.Equal(t, "<empty>", NewTree(nil).String())
}

func TestTreeSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.parser")
	defer teardown()
	//
	tree := makeTree(t)
	root := tree.Root()
	assert.Equal(t, topdown.Span{0, 1}, root.Span)
	assert.Equal(t, topdown.Span{0, 1}, root.Children[0].Span, "span of A")
	assert.Equal(t, topdown.Span{1, 1}, root.Children[1].Span, "span of B")
	assert.Equal(t, "A → CD", root.Children[0].Alternative.Production())
}

type countingListener struct {
	terminals, reductions int
}

func (l *countingListener) Reduce(node *Node, values []interface{}, level int) interface{} {
	l.reductions++
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v.(string))
	}
	return b.String()
}

func (l *countingListener) Terminal(node *Node, level int) interface{} {
	l.terminals++
	if node.Symbol.IsEpsilon() {
		return ""
	}
	return node.Symbol.String()
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.parser")
	defer teardown()
	//
	l := &countingListener{}
	v := makeTree(t).Walk(l)
	assert.Equal(t, "i", v)
	assert.Equal(t, 3, l.terminals)
	assert.Equal(t, 5, l.reductions)
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.parser")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToGraphViz(makeTree(t), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph {"))
	assert.Equal(t, 7, strings.Count(dot, "->"), "a tree of 8 nodes has 7 edges")
}
