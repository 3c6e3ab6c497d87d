/*
Package predictive provides a table-driven LL(1) parser. Clients have to use
the tools of package ll to prepare an LL(1) table. The parser utilizes this
table to create a leftmost derivation for a given input, delivered as a parse
tree.

Usage

Clients construct a grammar and an LL(1) table for it:

	g, _ := ll.NewGrammar("G", "SABCD", "+*i", 'S')
	g.AddProduction('S', "AB")
	…
	ga, err := ll.Analyze(g)
	table, err := ll.BuildTable(ga)

Then parse some input:

	p := predictive.NewParser(table)
	tree, err := p.Parse("i+i*i")
	fmt.Println(tree)    // S(A(C(i) D(ε)) B(+ A(C(i) D(* C(i) D(ε))) B(ε)))

Input is read from a scanner.Tokenizer. For strings, every character is a token.
Failing to parse an input does not affect the table; a parser may be used
for any number of inputs, one at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/parsetree"
	"github.com/npillmayer/topdown/ll/scanner"
)

// tracer traces with key 'topdown.parser'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.parser")
}

// ErrSyntax is matched by every *ParseError.
var ErrSyntax = errors.New("syntax error")

// ParseError describes why an input could not be parsed.
// Got is ll.EndOfInput if the input ended prematurely.
type ParseError struct {
	Pos      uint64      // input position of the offending token
	Got      ll.Symbol   // lookahead symbol
	Expected []ll.Symbol // symbols acceptable at Pos, may be empty
	Err      error       // scanner error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at position %d: %v", ErrSyntax, e.Pos, e.Err)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at position %d: unexpected %v", ErrSyntax, e.Pos, e.Got)
	}
	exp := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		exp[i] = s.String()
	}
	return fmt.Sprintf("%s at position %d: expected one of {%s}, got %v", ErrSyntax, e.Pos,
		strings.Join(exp, ", "), e.Got)
}

// Is lets a ParseError match ErrSyntax.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser is an LL(1)-parser type. Create and initialize one with NewParser(…).
type Parser struct {
	table   *ll.Table
	symbols *arraystack.Stack // symbols still to derive
	nodes   *arraystack.Stack // tree nodes parallel to symbols
}

// NewParser creates a parser for an LL(1) table.
func NewParser(table *ll.Table) *Parser {
	return &Parser{
		table:   table,
		symbols: arraystack.New(),
		nodes:   arraystack.New(),
	}
}

// Parse parses an input string, starting with the start symbol of the grammar.
func Parse(table *ll.Table, start ll.Symbol, input string) (*parsetree.Tree, error) {
	p := NewParser(table)
	scan := scanner.NewCharTokenizer("input", strings.NewReader(input))
	return p.parse(start, scan)
}

// Parse parses an input string. Every character of input is a token.
func (p *Parser) Parse(input string) (*parsetree.Tree, error) {
	scan := scanner.NewCharTokenizer("input", strings.NewReader(input))
	return p.ParseTokens(scan)
}

// ParseTokens parses the token stream of a tokenizer. Token types are
// interpreted as symbols, scanner.EOF being the end of input.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) (*parsetree.Tree, error) {
	if p.table == nil {
		return nil, fmt.Errorf("LL(1) parser not initialized")
	}
	return p.parse(p.table.Start(), scan)
}

// input is the token stream as seen by the parser.
type input struct {
	scan  scanner.Tokenizer
	token topdown.Token
	a     ll.Symbol // lookahead symbol
	err   error     // first scanner error
}

func (in *input) advance() error {
	in.token = in.scan.NextToken()
	if in.err != nil {
		return &ParseError{Pos: in.token.Span().From(), Err: in.err}
	}
	if in.token.TokType() == scanner.EOF {
		in.a = ll.EndOfInput
		return nil
	}
	in.a = ll.Symbol(in.token.TokType())
	tracer().Debugf("got token %q from scanner", in.token.Lexeme())
	if in.a == ll.EndOfInput || !in.a.IsTerminal() {
		return &ParseError{Pos: in.token.Span().From(), Got: in.a}
	}
	return nil
}

func (in *input) pos() uint64 {
	return in.token.Span().From()
}

func (p *Parser) parse(start ll.Symbol, scan scanner.Tokenizer) (*parsetree.Tree, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	in := &input{scan: scan}
	scan.SetErrorHandler(func(e error) {
		if in.err == nil {
			in.err = e
		}
	})
	p.symbols.Clear()
	p.nodes.Clear()
	root := parsetree.NewNode(start)
	p.symbols.Push(start)
	p.nodes.Push(root)
	if err := in.advance(); err != nil {
		return nil, err
	}
	for !p.symbols.Empty() {
		x, _ := p.symbols.Pop()
		y, _ := p.nodes.Pop()
		X, node := x.(ll.Symbol), y.(*parsetree.Node)
		if X.IsTerminal() {
			if X != in.a {
				return nil, p.fail(in, []ll.Symbol{X})
			}
			tracer().Debugf("match %v", X)
			node.Token = in.token
			node.Span = in.token.Span()
			if err := in.advance(); err != nil {
				return nil, err
			}
			continue
		}
		alt, ok := p.table.Lookup(X, in.a)
		if !ok {
			return nil, p.fail(in, p.expected(X))
		}
		tracer().Debugf("M[%v,%v] = %s", X, in.a, alt.Production())
		children := node.Expand(alt)
		if alt.IsEpsilon() {
			children[0].Span = topdown.Span{in.pos(), in.pos()}
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			p.symbols.Push(children[i].Symbol)
			p.nodes.Push(children[i])
		}
	}
	if in.a != ll.EndOfInput {
		tracer().Infof("input not fully consumed")
		return nil, p.fail(in, []ll.Symbol{ll.EndOfInput})
	}
	tree := parsetree.NewTree(root)
	tracer().Infof("accepted, tree = %v", tree)
	return tree, nil
}

// expected collects the lookaheads with a table entry for non-terminal V.
func (p *Parser) expected(V ll.Symbol) []ll.Symbol {
	var exp []ll.Symbol
	for _, a := range p.table.Terminals() {
		if _, ok := p.table.Lookup(V, a); ok {
			exp = append(exp, a)
		}
	}
	return exp
}

func (p *Parser) fail(in *input, expected []ll.Symbol) error {
	err := &ParseError{Pos: in.pos(), Got: in.a, Expected: expected}
	tracer().Infof("%v", err)
	p.symbols.Clear()
	p.nodes.Clear()
	return err
}
