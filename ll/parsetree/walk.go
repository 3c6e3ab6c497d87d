package parsetree

// Listener is a type for walking a parse tree bottom up.
//
// Terminal is called for every terminal leaf and for every ε-leaf. Reduce
// is called for every non-terminal node after all of its children have been
// visited, receiving the values the listener returned for them.
type Listener interface {
	Reduce(node *Node, values []interface{}, level int) interface{}
	Terminal(node *Node, level int) interface{}
}

// Walk walks the tree, calling the listener for every node. It returns
// the value the listener returned for the root node.
func (t *Tree) Walk(listener Listener) interface{} {
	if t.root == nil {
		return nil
	}
	tracer().Debugf("=== Walk ===============================")
	v := walk(t.root, listener, 0)
	tracer().Debugf("========================================")
	return v
}

func walk(n *Node, listener Listener, level int) interface{} {
	if n.IsLeaf() {
		return listener.Terminal(n, level)
	}
	values := make([]interface{}, len(n.Children))
	for i, ch := range n.Children {
		values[i] = walk(ch, listener, level+1)
	}
	tracer().Debugf("%sreduce %v", indent(level), n.Alternative)
	return listener.Reduce(n, values, level)
}

func indent(level int) string {
	b := make([]byte, 2*level)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
