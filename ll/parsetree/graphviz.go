package parsetree

import (
	"fmt"
	"io"
	"strings"
)

// ToGraphViz exports a parse tree to the Graphviz Dot format.
func ToGraphViz(t *Tree, w io.Writer) error {
	_, err := io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	if err != nil {
		return err
	}
	ids := make(map[*Node]int)
	t.Each(func(n *Node, level int) {
		ids[n] = len(ids)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "n%03d [fillcolor=%s label=\"{%s | %d…%d}\"]\n", ids[n], nodecolor(n),
			recordEscape(n.Symbol.String()), n.Span.From(), n.Span.To())
	})
	if err != nil {
		return err
	}
	t.Each(func(n *Node, level int) {
		for _, ch := range n.Children {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, "n%03d -> n%03d\n", ids[n], ids[ch])
		}
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// recordEscape escapes characters with a special meaning in record labels.
func recordEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`).Replace(s)
}

func nodecolor(n *Node) string {
	if n.Symbol.IsNonTerminal() {
		return "white"
	}
	if n.Symbol.IsEpsilon() {
		return "lightgray"
	}
	return "lightblue"
}
