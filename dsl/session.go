package dsl

import (
	"github.com/lyraproj/sonicweave/interval"
	"github.com/lyraproj/sonicweave/parser"
)

// ScaleName is the reserved name under which the current scale is bound
const ScaleName = `$`

type (
	// A Scope is a container of named values. A derived scope reads through to
	// its parent but keeps all of its own assignments local, i.e. no assignment
	// made in a derived scope is ever visible in the parent.
	Scope interface {
		// Get returns a named value together with a boolean indicating if the
		// name was found
		Get(name string) (value Value, found bool)

		// Set binds the name in this scope, replacing any previous binding in
		// this scope
		Set(name string, value Value)

		// Derive creates a new scope that has this scope as its parent
		Derive() Scope

		// Names returns the names bound directly in this scope in the order
		// that they were first bound
		Names() []string
	}

	// ExpressionEvaluator evaluates expressions in its own scope. Evaluation
	// errors are raised as a panic with an issue.Reported.
	ExpressionEvaluator interface {
		Eval(expr parser.Expression) Value

		Scope() Scope
	}

	// A Session is the persistent state of an interactive run: the bindings,
	// the current scale, and the title. A Session is not re-entrant and must
	// only be used from one go-routine at a time.
	Session interface {
		// Visit evaluates a statement for effect. It returns a non nil Interrupt
		// when the statement requests a return or a break. Evaluation errors
		// are raised as a panic with an issue.Reported.
		Visit(statement parser.Statement) *Interrupt

		// NewExpressionScope returns an evaluator whose scope is derived from
		// the session scope
		NewExpressionScope() ExpressionEvaluator

		// HandleValue performs the standard processing of a value produced by
		// an expression statement, e.g. appending an interval to the scale
		HandleValue(value Value)

		// Scope returns the session scope
		Scope() Scope

		// Scale returns the current scale
		Scale() *interval.Scale

		// Title returns the title of the scale or the empty string if no title
		// has been set
		Title() string

		SetTitle(title string)

		// Relative returns the value of the given interval relative to the
		// unison 1/1 without color or label
		Relative(iv *interval.Interval) *interval.Interval

		Logger() Logger
	}
)
