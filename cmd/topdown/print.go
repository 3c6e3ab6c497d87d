package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/parsetree"
	"github.com/pterm/pterm"
)

// Printers only read the structures they display.

func printGrammar(g *ll.Grammar) {
	pterm.Info.Printf("Grammar %s, start symbol %v\n", g.Name, g.Start())
	data := pterm.TableData{{"#", "Production"}}
	g.EachAlternative(func(alt *ll.Alternative) {
		data = append(data, []string{fmt.Sprintf("%d", alt.Serial), alt.Production()})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printEBNF(g *ll.Grammar) error {
	var buf bytes.Buffer
	if err := ll.WriteEBNF(g, &buf); err != nil {
		return err
	}
	pterm.Println(buf.String())
	if err := ll.VerifyEBNF(g); err != nil {
		pterm.Error.Println(err.Error())
	}
	return nil
}

func printFirstFollow(ga *ll.Analysis) {
	data := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	g := ga.Grammar()
	for _, V := range g.NonTerminals() {
		if !g.Defined(V) {
			continue
		}
		first, follow := "-", "-"
		if fs, err := ga.First(V); err == nil {
			first = fs.String()
		}
		if fs, err := ga.Follow(V); err == nil {
			follow = fs.String()
		}
		data = append(data, []string{V.String(), first, follow})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTable(table *ll.Table) {
	header := []string{""}
	for _, a := range table.Terminals() {
		header = append(header, a.String())
	}
	data := pterm.TableData{header}
	g := table.Grammar()
	for _, V := range g.NonTerminals() {
		row := []string{V.String()}
		for _, a := range table.Terminals() {
			cell := ""
			if alt, ok := table.Lookup(V, a); ok {
				cell = alt.Production()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.Info.Println(tableSummary(table))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func tableSummary(table *ll.Table) string {
	fp, err := table.Fingerprint()
	if err != nil {
		return fmt.Sprintf("LL(1) table with %d entries (no fingerprint: %v)", table.Size(), err)
	}
	return fmt.Sprintf("LL(1) table with %d entries, fingerprint %s", table.Size(), fp)
}

func printTree(tree *parsetree.Tree) {
	var list pterm.LeveledList
	tree.Each(func(n *parsetree.Node, level int) {
		list = append(list, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%v %v", n.Symbol, n.Span),
		})
	})
	pterm.Info.Println(tree.String())
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

// reductions collects the alternatives of a parse tree in bottom-up order,
// together with the part of the input each of them derives.
type reductions struct {
	data pterm.TableData
}

func newReductions() *reductions {
	return &reductions{data: pterm.TableData{{"Production", "Derives", "Span"}}}
}

func (r *reductions) Terminal(n *parsetree.Node, level int) interface{} {
	if n.Token == nil {
		return ""
	}
	return n.Token.Lexeme()
}

func (r *reductions) Reduce(n *parsetree.Node, values []interface{}, level int) interface{} {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v.(string))
	}
	r.data = append(r.data, []string{n.Alternative.Production(), b.String(), n.Span.String()})
	return b.String()
}

func printReductions(tree *parsetree.Tree) {
	r := newReductions()
	tree.Walk(r)
	pterm.DefaultTable.WithHasHeader().WithData(r.data).Render()
}
