package ll

import (
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Symbol is a grammar symbol. Non-terminals are the upper case letters
// A…Z, every other character (except for the sentinels below) is a terminal.
type Symbol rune

// Range of non-terminals and reserved sentinel symbols.
const (
	MinNonTerminal Symbol = 'A'
	MaxNonTerminal Symbol = 'Z'
	Epsilon        Symbol = -100 // the empty string
	EndOfInput     Symbol = '$'  // end of input marker
)

// Reserved words for the empty alternative.
const (
	EpsilonWord      = "epsilon"
	EpsilonWordShort = "eps"
)

// IsNonTerminal is a predicate.
func (s Symbol) IsNonTerminal() bool {
	return s >= MinNonTerminal && s <= MaxNonTerminal
}

// IsTerminal returns true for terminals, including EndOfInput.
func (s Symbol) IsTerminal() bool {
	return !s.IsNonTerminal() && s != Epsilon
}

// IsEpsilon is a predicate.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

func symbolIndex(s Symbol) int {
	return int(s - MinNonTerminal)
}

// symbolComparator sorts symbols by rune value. We need this for gods containers.
func symbolComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(Symbol)), int(s2.(Symbol)))
}

func symbolsString(syms []Symbol) string {
	var b strings.Builder
	b.WriteString("{")
	for i, s := range syms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("}")
	return b.String()
}
