/*
Package scanner defines an interface for scanners to be used with the
predictive parsers of package ll/predictive.

Grammars of package ll are defined over single characters, so the default
tokenizer is a thin wrapper over the Go std lib 'text/scanner' which reports
every rune as a token of its own. An adapter for lexmachine lives in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() topdown.Token
	SetErrorHandler(func(error))
}

// CharTokenizer is a tokenizer returning every input character as a token,
// with the token type being the rune value. Create one with NewCharTokenizer.
type CharTokenizer struct {
	sc             scanner.Scanner
	lastToken      rune        // last token this scanner has produced
	Error          func(error) // error handler
	skipWhitespace bool
	pending        []runeError // errors for runes not yet delivered as tokens
}

// runeError is an error text/scanner reported while reading ahead.
type runeError struct {
	offset int
	err    error
}

var _ Tokenizer = (*CharTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NewCharTokenizer creates a tokenizer for input. sourceID names the input in
// error messages.
func NewCharTokenizer(sourceID string, input io.Reader, opts ...Option) *CharTokenizer {
	t := &CharTokenizer{}
	t.Error = logError
	t.sc.Init(input)
	t.sc.Filename = sourceID
	t.sc.Mode = 0
	t.sc.Whitespace = 0
	t.sc.Error = func(s *scanner.Scanner, msg string) {
		t.pending = append(t.pending, runeError{
			offset: s.Pos().Offset,
			err:    fmt.Errorf("%s: %s", s.Pos(), msg),
		})
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.skipWhitespace {
		t.sc.Whitespace = scanner.GoWhitespace
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *CharTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *CharTokenizer) NextToken() topdown.Token {
	t.lastToken = t.sc.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("CharTokenizer reached end of input")
		t.reportErrors(int(^uint(0) >> 1))
		pos := uint64(t.sc.Pos().Offset)
		return MakeDefaultToken(EOF, "", topdown.Span{pos, pos})
	}
	t.reportErrors(t.sc.Position.Offset)
	return DefaultToken{
		kind:   topdown.TokType(t.lastToken),
		lexeme: t.sc.TokenText(),
		span:   topdown.Span{uint64(t.sc.Position.Offset), uint64(t.sc.Pos().Offset)},
	}
}

// text/scanner reads one rune ahead, so an error for the rune following a
// token is raised while that token is scanned. reportErrors hands errors to
// the error handler only once the scanner has arrived at the erroneous rune.
func (t *CharTokenizer) reportErrors(offset int) {
	i := 0
	for ; i < len(t.pending) && t.pending[i].offset <= offset; i++ {
		t.Error(t.pending[i].err)
	}
	t.pending = t.pending[i:]
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// character tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   topdown.TokType
	lexeme string
	Val    interface{}
	span   topdown.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ topdown.TokType, lexeme string, span topdown.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() topdown.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() topdown.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}

// --- Scanner options -------------------------------------------------------

// Option configures a character tokenizer.
type Option func(t *CharTokenizer)

// SkipWhitespace sets or clears option SkipWhitespace. If set, blanks, tabs
// and newlines are not reported as tokens.
func SkipWhitespace(b bool) Option {
	return func(t *CharTokenizer) {
		t.skipWhitespace = b
	}
}
