/*
Package gramfile reads grammars for package ll from a textual description.

A grammar file is line oriented:

    # Expressions with + and *
    %name Expressions
    %nonterminals SABCD
    %terminals +*i
    %start S
    S -> AB
    A -> CD
    B -> +AB | eps
    C -> i | (S)
    D -> *CD | epsilon

Every symbol is a single ASCII character, blanks between symbols are ignored.
Characters '|' and '#' cannot be used as terminals. Directives are optional:
without %nonterminals the non-terminals are collected from the left-hand sides
in order of appearance, without %start the first left-hand side is the start
symbol. Alternatives are registered in the order they appear in the file.

Errors are reported as *gramfile.Error, carrying the line number.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramfile

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}

// DefaultName is used for grammars without a %name directive.
const DefaultName = "G"

// Errors wrapped by *Error.
var (
	ErrSyntax = errors.New("syntax error in grammar file")
	ErrEmpty  = errors.New("no productions in grammar file")
)

// Error is an error for a line of a grammar file.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func syntaxError(line int, format string, args ...interface{}) error {
	return &Error{
		Line: line,
		Err:  fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)),
	}
}

// --- Lexer -----------------------------------------------------------------

const (
	tokName int = iota + 1
	tokDirective
	tokNewline
	tokChar
	tokArrow
	tokBar
	tokEps
	tokEpsilon
)

var literals = []string{"->", "|"}
var keywords = []string{ll.EpsilonWordShort, ll.EpsilonWord}
var tokenIds = map[string]int{
	"NAME":              tokName,
	"DIRECTIVE":         tokDirective,
	"NEWLINE":           tokNewline,
	"CHAR":              tokChar,
	"->":                tokArrow,
	"|":                 tokBar,
	ll.EpsilonWordShort: tokEps,
	ll.EpsilonWord:      tokEpsilon,
}

var (
	lexer    *lexmach.Adapter
	lexerErr error
	lexOnce  sync.Once
)

// initLexer compiles the DFA once.
func initLexer() (*lexmach.Adapter, error) {
	lexOnce.Do(func() {
		lexer, lexerErr = lexmach.New(lexerInit, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

func lexerInit(lx *lexmachine.Lexer) {
	lx.Add([]byte(`#[^\n]*`), lexmach.Skip)
	lx.Add([]byte(`%name[ \t]+[^\n]*`), lexmach.MakeToken("NAME", tokName))
	lx.Add([]byte(`%[a-z]+`), lexmach.MakeToken("DIRECTIVE", tokDirective))
	lx.Add([]byte(`\n`), lexmach.MakeToken("NEWLINE", tokNewline))
	lx.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
	lx.Add([]byte(`[^ \t\r\n|]`), lexmach.MakeToken("CHAR", tokChar))
}

// --- Reader ----------------------------------------------------------------

type rule struct {
	line int
	lhs  ll.Symbol
	rhs  []ll.Symbol // nil for ε
}

type reader struct {
	tokens    scanner.Tokenizer
	lookahead topdown.Token
	line      int   // line of lookahead
	scanErr   error // first error reported by the scanner
	name      string
	nonterm   string
	term      string
	start     ll.Symbol
	rules     []rule
}

// ReadGrammar reads a grammar description from r and creates a grammar from it.
// The grammar is validated, i.e. every non-terminal referenced in an
// alternative has to have alternatives of its own.
func ReadGrammar(r io.Reader) (*ll.Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lm, err := initLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Tokenizer(string(input))
	if err != nil {
		return nil, err
	}
	rd := &reader{tokens: scan, line: 1, name: DefaultName}
	scan.SetErrorHandler(func(e error) {
		if rd.scanErr == nil {
			rd.scanErr = &Error{Line: rd.line, Err: fmt.Errorf("%w: %v", ErrSyntax, e)}
		}
	})
	if err := rd.read(); err != nil {
		return nil, err
	}
	if rd.scanErr != nil {
		return nil, rd.scanErr
	}
	return rd.grammar()
}

func (rd *reader) next() topdown.Token {
	rd.lookahead = rd.tokens.NextToken()
	if l, ok := rd.lookahead.Value().(int); ok {
		rd.line = l
	}
	return rd.lookahead
}

func (rd *reader) atEOL() bool {
	t := rd.lookahead.TokType()
	return t == scanner.EOF || t == topdown.TokType(tokNewline)
}

func (rd *reader) read() error {
	rd.next()
	for rd.lookahead.TokType() != scanner.EOF {
		var err error
		switch int(rd.lookahead.TokType()) {
		case tokNewline:
			rd.next()
			continue
		case tokName:
			rd.name = strings.TrimSpace(strings.TrimPrefix(rd.lookahead.Lexeme(), "%name"))
			rd.next()
		case tokDirective:
			err = rd.directive()
		case tokChar:
			err = rd.production()
		default:
			err = syntaxError(rd.line, "unexpected %q", rd.lookahead.Lexeme())
		}
		if err != nil {
			return err
		}
		if !rd.atEOL() {
			return syntaxError(rd.line, "unexpected %q at end of line", rd.lookahead.Lexeme())
		}
	}
	return nil
}

// chars collects the characters up to the end of the line.
func (rd *reader) chars() (string, error) {
	var b strings.Builder
	for !rd.atEOL() {
		if int(rd.lookahead.TokType()) != tokChar {
			return "", syntaxError(rd.line, "unexpected %q", rd.lookahead.Lexeme())
		}
		b.WriteString(rd.lookahead.Lexeme())
		rd.next()
	}
	return b.String(), nil
}

func (rd *reader) directive() error {
	d := rd.lookahead.Lexeme()
	line := rd.line
	rd.next()
	arg, err := rd.chars()
	if err != nil {
		return err
	}
	switch d {
	case "%nonterminals":
		rd.nonterm = arg
	case "%terminals":
		rd.term = arg
	case "%start":
		if len(arg) != 1 {
			return syntaxError(line, "start symbol must be a single character, is %q", arg)
		}
		rd.start = ll.Symbol(arg[0])
	default:
		return syntaxError(line, "unknown directive %s", d)
	}
	tracer().Debugf("grammar file: %s %s", d, arg)
	return nil
}

// production reads  X -> alt | alt | …
func (rd *reader) production() error {
	lhs := ll.Symbol(rd.lookahead.Lexeme()[0])
	line := rd.line
	if int(rd.next().TokType()) != tokArrow {
		return syntaxError(line, "expected -> after %v", lhs)
	}
	rd.next()
	for {
		rhs, err := rd.alternative()
		if err != nil {
			return err
		}
		rd.rules = append(rd.rules, rule{line: line, lhs: lhs, rhs: rhs})
		if int(rd.lookahead.TokType()) != tokBar {
			return nil
		}
		rd.next()
	}
}

// alternative reads the symbols of one alternative. The keywords for ε
// have to stand alone; blank-separated characters spelling them are terminals.
func (rd *reader) alternative() ([]ll.Symbol, error) {
	var b strings.Builder
	eps := false
	for !rd.atEOL() && int(rd.lookahead.TokType()) != tokBar {
		switch int(rd.lookahead.TokType()) {
		case tokChar:
			if eps {
				return nil, syntaxError(rd.line, "ε cannot be followed by symbols")
			}
			b.WriteString(rd.lookahead.Lexeme())
		case tokEps, tokEpsilon:
			if eps || b.Len() > 0 {
				return nil, syntaxError(rd.line, "ε has to be the only symbol of an alternative")
			}
			eps = true
		default:
			return nil, syntaxError(rd.line, "unexpected %q", rd.lookahead.Lexeme())
		}
		rd.next()
	}
	if eps {
		return nil, nil
	}
	if b.Len() == 0 {
		return nil, &Error{Line: rd.line, Err: fmt.Errorf("%w: empty alternative", ll.ErrNullRule)}
	}
	var rhs []ll.Symbol
	for _, r := range b.String() {
		rhs = append(rhs, ll.Symbol(r))
	}
	return rhs, nil
}

func (rd *reader) grammar() (*ll.Grammar, error) {
	if len(rd.rules) == 0 {
		return nil, &Error{Line: rd.line, Err: ErrEmpty}
	}
	nonterm := rd.nonterm
	if nonterm == "" {
		var b strings.Builder
		for _, r := range rd.rules {
			if !strings.ContainsRune(b.String(), rune(r.lhs)) {
				b.WriteRune(rune(r.lhs))
			}
		}
		nonterm = b.String()
	}
	start := rd.start
	if start == 0 {
		start = rd.rules[0].lhs
	}
	g, err := ll.NewGrammar(rd.name, nonterm, rd.term, start)
	if err != nil {
		return nil, &Error{Line: 1, Err: err}
	}
	for _, r := range rd.rules {
		if _, err := g.AddAlternative(r.lhs, r.rhs); err != nil {
			return nil, &Error{Line: r.line, Err: err}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, &Error{Line: rd.line, Err: err}
	}
	tracer().Infof("read grammar %s with %d alternatives", g.Name, g.Size())
	return g, nil
}
