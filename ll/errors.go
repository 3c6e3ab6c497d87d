package ll

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by grammar construction and grammar analysis.
var (
	ErrIncorrectVariable   = errors.New("incorrect non-terminal symbol")
	ErrNullRule            = errors.New("null rule received")
	ErrReservedSymbol      = errors.New("reserved symbol used")
	ErrUndefinedProduction = errors.New("undefined production")
	ErrNotLL1              = errors.New("grammar is not LL(1)")
	ErrTableConflict       = errors.New("LL(1) table conflict")
)

// ConflictError is returned by BuildTable if two alternatives claim the same
// table cell. Terminal is Epsilon if two alternatives of NonTerminal both
// derive the empty string.
type ConflictError struct {
	NonTerminal Symbol
	Terminal    Symbol
	Existing    *Alternative
	Candidate   *Alternative
}

func (e *ConflictError) Error() string {
	if e.Terminal == Epsilon {
		return fmt.Sprintf("%s: %v and %v both derive ε", ErrNotLL1,
			e.Existing.Production(), e.Candidate.Production())
	}
	return fmt.Sprintf("%s: table cell (%v, %v) claimed by %v and %v", ErrNotLL1,
		e.NonTerminal, e.Terminal, e.Existing.Production(), e.Candidate.Production())
}

// Is lets a ConflictError match both ErrTableConflict and ErrNotLL1.
func (e *ConflictError) Is(target error) bool {
	return target == ErrTableConflict || target == ErrNotLL1
}

// FollowCycleError is returned if the FOLLOW set of a non-terminal depends on
// itself. Chain lists the non-terminals on the dependency path, the first and
// last entry being identical.
type FollowCycleError struct {
	Chain []Symbol
}

func (e *FollowCycleError) Error() string {
	links := make([]string, len(e.Chain))
	for i, s := range e.Chain {
		links[i] = fmt.Sprintf("FOLLOW(%v)", s)
	}
	return fmt.Sprintf("%s: circular dependency %s", ErrNotLL1, strings.Join(links, " → "))
}

// Is lets a FollowCycleError match ErrNotLL1.
func (e *FollowCycleError) Is(target error) bool {
	return target == ErrNotLL1
}

func undefined(V Symbol) error {
	return fmt.Errorf("%w: no alternatives for %v", ErrUndefinedProduction, V)
}
