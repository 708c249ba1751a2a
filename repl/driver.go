// Package repl evaluates blocks of source typed into an interactive session.
package repl

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/parser"
)

// InputName is the file name reported in the location of errors found in
// interactive input
const InputName = `<input>`

// A Driver evaluates blocks against one persistent session. A Driver is not
// safe for concurrent use.
type Driver struct {
	session  dsl.Session
	fileName string
}

// NewDriver returns a driver for the given session
func NewDriver(session dsl.Session) *Driver {
	return &Driver{session: session, fileName: InputName}
}

// WithFileName returns a copy of the driver that reports errors as located in
// the given file
func (d *Driver) WithFileName(fileName string) *Driver {
	return &Driver{session: d.session, fileName: fileName}
}

// Session returns the session that blocks are evaluated against
func (d *Driver) Session() dsl.Session {
	return d.session
}

// EvaluateBlock parses the given source and evaluates its statements in order.
// When the last statement is an expression statement, its value is evaluated
// in a derived scope, passed on to the session's value handling and returned.
// Otherwise the returned value is nil.
//
// All failures are returned as an issue.Reported error and a nil value. A
// return or break in any position is an error. Statements evaluated before a
// failing statement keep their effect on the session.
func (d *Driver) EvaluateBlock(source string) (value dsl.Value, err error) {
	program, err := parser.Parse(d.fileName, source)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = toReported(r, program)
		}
	}()

	statements := program.Statements()
	last := len(statements) - 1
	for i, statement := range statements {
		if i == last {
			return d.evaluateFinal(statement), nil
		}
		d.visit(statement)
	}
	return nil, nil
}

func (d *Driver) evaluateFinal(statement parser.Statement) dsl.Value {
	if es, ok := statement.(*parser.ExpressionStatement); ok {
		v := d.session.NewExpressionScope().Eval(es.Expression())
		d.session.HandleValue(v)
		return v
	}
	d.visit(statement)
	return nil
}

func (d *Driver) visit(statement parser.Statement) {
	if interrupt := d.session.Visit(statement); interrupt != nil {
		panic(interrupt.IllegalHere())
	}
}

// toReported converts a recovered panic value into an issue.Reported. Any other
// kind of panic is re-raised.
func toReported(r interface{}, location issue.Location) issue.Reported {
	switch r := r.(type) {
	case issue.Reported:
		return r
	case error:
		return dsl.Error(dsl.EvaluationFailed, location, issue.H{`message`: r.Error()})
	case string:
		return dsl.Error(dsl.EvaluationFailed, location, issue.H{`message`: r})
	default:
		panic(r)
	}
}
