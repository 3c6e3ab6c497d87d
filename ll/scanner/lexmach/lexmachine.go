package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// Adapter holds a compiled lexmachine DFA. It is safe to create any number
// of tokenizers from one adapter.
type Adapter struct {
	lexer *lexmachine.Lexer
}

// New compiles a DFA. init adds the regular-expression patterns; patterns
// added there win over literals and keywords for matches of equal length.
// literals (e.g. "->") are matched verbatim, keywords (e.g. "eps") as words.
// ids maps literals and keywords to their token types; every one of them
// needs an entry.
func New(init func(*lexmachine.Lexer), literals []string, keywords []string,
	ids map[string]int) (*Adapter, error) {
	//
	lx := lexmachine.NewLexer()
	if init != nil {
		init(lx)
	}
	for _, w := range append(append([]string(nil), literals...), keywords...) {
		id, ok := ids[w]
		if !ok {
			return nil, fmt.Errorf("no token type for %q", w)
		}
		lx.Add(quote(w), MakeToken(w, id))
	}
	if err := lx.Compile(); err != nil {
		tracer().Errorf("cannot compile DFA: %v", err)
		return nil, err
	}
	return &Adapter{lexer: lx}, nil
}

// quote escapes every character of a literal for lexmachine's regex syntax.
func quote(lit string) []byte {
	var b strings.Builder
	for _, r := range lit {
		if r < 0x80 && !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return []byte(b.String())
}

// Tokenizer creates a tokenizer for input.
func (a *Adapter) Tokenizer(input string) (*Tokenizer, error) {
	s, err := a.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Tokenizer{scan: s, errorHandler: logError}, nil
}

// Tokenizer produces tokens from a lexmachine scanner. Every token carries
// the (1-based) input line of its match as its value, which grammar readers
// use for error messages.
type Tokenizer struct {
	scan         *lexmachine.Scanner
	errorHandler func(error)
	line         int // line of the last token
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

func logError(e error) {
	tracer().Errorf("lexmachine: %v", e)
}

// SetErrorHandler sets an error handler. Input which matches no pattern
// is reported to the handler and skipped.
func (t *Tokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.errorHandler = h
}

// NextToken is part of the Tokenizer interface. At the end of input a token
// of type scanner.EOF is returned, carrying the line of the last token.
func (t *Tokenizer) NextToken() topdown.Token {
	for {
		tok, err, eof := t.scan.Next()
		if eof {
			pos := uint64(t.scan.TC)
			eofToken := scanner.MakeDefaultToken(scanner.EOF, "", topdown.Span{pos, pos})
			eofToken.Val = t.line
			return eofToken
		}
		if err != nil {
			t.errorHandler(err)
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				t.scan.TC = ui.FailTC
			}
			continue
		}
		m := tok.(*lexmachine.Token)
		t.line = m.StartLine
		tracer().Debugf("line %d: token %d %q", m.StartLine, m.Type, m.Lexeme)
		token := scanner.MakeDefaultToken(
			topdown.TokType(m.Type),
			string(m.Lexeme),
			topdown.Span{uint64(m.TC), uint64(m.TC + len(m.Lexeme))},
		)
		token.Val = m.StartLine
		return token
	}
}

// Skip is an action which drops the match, e.g. for blanks and comments.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is an action which turns a match into a token of type id.
// name is used for tracing only.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tracer().Debugf("match %s at line %d", name, m.StartLine)
		return s.Token(id, string(m.Bytes), m), nil
	}
}
