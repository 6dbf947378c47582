package status

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBoolean is returned when a node with no boolean form is evaluated.
	ErrNotBoolean = errors.New("expression has no boolean value")
	// ErrNoOutcomes is returned when a node with no set form is resolved to outcomes.
	ErrNoOutcomes = errors.New("expression has no outcome set")
	// ErrDefinitionCycle is returned when definitions expand into each other without end.
	ErrDefinitionCycle = errors.New("definition expands too deeply")
	// ErrNotEnumerated marks a rule whose value is not an enumerated set.
	ErrNotEnumerated = errors.New("rule value is not an enumerated outcome set")
)

// ParseError reports a malformed expression together with its source text.
type ParseError struct {
	Source string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed expression %q at offset %d: %s", e.Source, e.Offset, e.Reason)
}

// LoadError reports a status source line that could not be loaded.
type LoadError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %q: %v", e.Source, e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("%s:%d: malformed line %q", e.Source, e.Line, e.Text)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// EvalError reports a node that does not support the requested operation.
type EvalError struct {
	Expr *Expr
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Expr, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// InvariantError reports a rule that broke the enumerated-value invariant.
// It points at a programming error in rule construction, not at user input.
type InvariantError struct {
	Rule *Rule
	Got  OutcomeSet
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("rule %q (%s:%d) resolved to %s: %v", e.Rule.Raw, e.Rule.Source, e.Rule.Line, e.Got.Kind(), ErrNotEnumerated)
}

func (e *InvariantError) Unwrap() error {
	return ErrNotEnumerated
}
