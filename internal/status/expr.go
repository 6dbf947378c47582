package status

import (
	"golang.org/x/text/cases"
)

// NodeKind tags the variant held by an Expr.
type NodeKind int

const (
	// NodeConstant is a literal true or false.
	NodeConstant NodeKind = iota
	// NodeVariable is a $name reference into the environment.
	NodeVariable
	// NodeOutcome is an outcome name, possibly naming a definition.
	NodeOutcome
	// NodeOperation is a binary operation.
	NodeOperation
)

// Op is a binary operator.
type Op string

const (
	OpAnd    Op = "&&"
	OpOr     Op = "||"
	OpComma  Op = ","
	OpEquals Op = "=="
	OpIf     Op = "IF"
)

// maxDefinitionDepth bounds definition expansion.
const maxDefinitionDepth = 64

// Expr is an immutable expression node.
type Expr struct {
	kind  NodeKind
	value bool
	name  string
	op    Op
	left  *Expr
	right *Expr
}

// Constant returns a literal node.
func Constant(value bool) *Expr {
	return &Expr{kind: NodeConstant, value: value}
}

// Variable returns a reference to the environment entry name.
func Variable(name string) *Expr {
	return &Expr{kind: NodeVariable, name: fold(name)}
}

// Outcome returns an outcome (or definition) reference.
func Outcome(name string) *Expr {
	return &Expr{kind: NodeOutcome, name: fold(name)}
}

// Operation returns the binary node left op right.
func Operation(left *Expr, op Op, right *Expr) *Expr {
	return &Expr{kind: NodeOperation, op: op, left: left, right: right}
}

// Kind reports which variant e is.
func (e *Expr) Kind() NodeKind {
	return e.kind
}

// Env is the case-folded environment expressions are evaluated against.
type Env map[string]string

// NewEnv folds the keys of vars.
func NewEnv(vars map[string]string) Env {
	env := make(Env, len(vars))
	for k, v := range vars {
		env[fold(k)] = v
	}

	return env
}

// Defs maps case-folded definition names to their expressions.
type Defs map[string]*Expr

// Evaluate resolves e to a boolean.
func (e *Expr) Evaluate(env Env, defs Defs) (bool, error) {
	switch e.kind {
	case NodeConstant:
		return e.value, nil
	case NodeOperation:
		return e.evaluateOperation(env, defs)
	}

	return false, &EvalError{Expr: e, Err: ErrNotBoolean}
}

func (e *Expr) evaluateOperation(env Env, defs Defs) (bool, error) {
	switch e.op {
	case OpAnd:
		left, err := e.left.Evaluate(env, defs)
		if err != nil || !left {
			return false, err
		}

		return e.right.Evaluate(env, defs)
	case OpOr, OpComma:
		left, err := e.left.Evaluate(env, defs)
		if err != nil || left {
			return left, err
		}

		return e.right.Evaluate(env, defs)
	case OpEquals:
		left, err := e.left.Outcomes(env, defs)
		if err != nil {
			return false, err
		}

		right, err := e.right.Outcomes(env, defs)
		if err != nil {
			return false, err
		}

		return !left.Intersect(right).IsEmpty(), nil
	case OpIf:
		// IF only carries meaning when resolving outcomes.
		return false, nil
	}

	return false, &EvalError{Expr: e, Err: ErrNotBoolean}
}

// Outcomes resolves e to an outcome set.
func (e *Expr) Outcomes(env Env, defs Defs) (OutcomeSet, error) {
	return e.outcomes(env, defs, 0)
}

func (e *Expr) outcomes(env Env, defs Defs, depth int) (OutcomeSet, error) {
	switch e.kind {
	case NodeVariable:
		if value, ok := env[e.name]; ok {
			return Enumerated(value), nil
		}

		return Empty(), nil
	case NodeOutcome:
		def, ok := defs[e.name]
		if !ok {
			return Enumerated(e.name), nil
		}

		if depth >= maxDefinitionDepth {
			return Empty(), &EvalError{Expr: e, Err: ErrDefinitionCycle}
		}

		return def.outcomes(env, defs, depth+1)
	case NodeOperation:
		return e.operationOutcomes(env, defs, depth)
	}

	return Empty(), &EvalError{Expr: e, Err: ErrNoOutcomes}
}

func (e *Expr) operationOutcomes(env Env, defs Defs, depth int) (OutcomeSet, error) {
	if e.op == OpIf {
		ok, err := e.right.Evaluate(env, defs)
		if err != nil {
			return Empty(), err
		}

		if !ok {
			return Empty(), nil
		}

		return e.left.outcomes(env, defs, depth)
	}

	left, err := e.left.outcomes(env, defs, depth)
	if err != nil {
		return Empty(), err
	}

	right, err := e.right.outcomes(env, defs, depth)
	if err != nil {
		return Empty(), err
	}

	switch e.op {
	case OpAnd:
		return left.Intersect(right), nil
	case OpOr, OpComma:
		return left.Union(right), nil
	}

	return Empty(), &EvalError{Expr: e, Err: ErrNoOutcomes}
}

func (e *Expr) String() string {
	switch e.kind {
	case NodeConstant:
		if e.value {
			return "true"
		}

		return "false"
	case NodeVariable:
		return "$" + e.name
	case NodeOutcome:
		return e.name
	}

	sep := " "
	if e.op == OpComma {
		sep = ""
	}

	return "(" + e.left.String() + sep + string(e.op) + " " + e.right.String() + ")"
}

// fold case-folds identifiers. A Caser is stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
