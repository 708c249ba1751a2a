package evaluator

import (
	"math/big"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
	"github.com/lyraproj/sonicweave/parser"
)

// evaluator evaluates statements and expressions against a session using a
// scope that is either the session scope or derived from it
type evaluator struct {
	session *session
	scope   dsl.Scope
}

func (e *evaluator) Scope() dsl.Scope {
	return e.scope
}

func (e *evaluator) derive() *evaluator {
	return &evaluator{e.session, e.scope.Derive()}
}

func (e *evaluator) visit(statement parser.Statement) *dsl.Interrupt {
	switch st := statement.(type) {
	case *parser.ExpressionStatement:
		e.session.HandleValue(e.derive().Eval(st.Expression()))
		return nil
	case *parser.VariableDeclaration:
		if st.Name() == dsl.ScaleName {
			panic(evalError(dsl.IllegalAssignment, st, issue.H{`name`: st.Name()}))
		}
		e.scope.Set(st.Name(), e.derive().Eval(st.Value()))
		return nil
	case *parser.BlockStatement:
		block := e.derive()
		for _, s := range st.Statements() {
			if interrupt := block.visit(s); interrupt != nil {
				return interrupt
			}
		}
		return nil
	case *parser.ReturnStatement:
		var value dsl.Value
		if st.Value() != nil {
			value = e.derive().Eval(st.Value())
		}
		return dsl.NewReturn(st, value)
	case *parser.BreakStatement:
		return dsl.NewBreak(st)
	default:
		panic(evalError(dsl.UnhandledExpression, statement, issue.H{`expression`: statement}))
	}
}

// Eval evaluates the given expression. Assignments made by the expression end up
// in the scope of the receiver.
func (e *evaluator) Eval(expr parser.Expression) dsl.Value {
	switch ex := expr.(type) {
	case *parser.IntegerLiteral:
		return interval.FromRatio(new(big.Rat).SetInt(ex.Value()))
	case *parser.DecimalLiteral:
		return interval.FromCents(ex.Value())
	case *parser.StepLiteral:
		return evalStepLiteral(ex)
	case *parser.StringLiteral:
		return dsl.Text(ex.Value())
	case *parser.ColorLiteral:
		return evalColorLiteral(ex)
	case *parser.Identifier:
		return e.evalIdentifier(ex)
	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(ex)
	case *parser.CallExpression:
		return e.evalCallExpression(ex)
	case *parser.BinaryExpression:
		return e.evalBinaryExpression(ex)
	case *parser.UnaryExpression:
		return e.evalUnaryExpression(ex)
	case *parser.IndexExpression:
		return e.evalIndexExpression(ex)
	case *parser.AssignmentExpression:
		return e.evalAssignmentExpression(ex)
	default:
		panic(evalError(dsl.UnhandledExpression, expr, issue.H{`expression`: expr}))
	}
}

func evalStepLiteral(expr *parser.StepLiteral) dsl.Value {
	iv, err := interval.FromSteps(expr.Steps(), expr.Divisions())
	if err != nil {
		panic(evalError(dsl.ArithmeticError, expr, issue.H{`message`: err.Error()}))
	}
	return iv
}

func evalColorLiteral(expr *parser.ColorLiteral) dsl.Value {
	c, ok := interval.ParseColor(expr.Value())
	if !ok {
		panic(evalError(dsl.IllegalColor, expr, issue.H{`color`: expr.Value()}))
	}
	return c
}

func (e *evaluator) evalIdentifier(expr *parser.Identifier) dsl.Value {
	if v, ok := e.scope.Get(expr.Name()); ok {
		return v
	}
	panic(evalError(dsl.UnknownVariable, expr, issue.H{`name`: expr.Name()}))
}

func (e *evaluator) evalArrayLiteral(expr *parser.ArrayLiteral) dsl.Value {
	scale := interval.NewScale()
	for _, ee := range expr.Elements() {
		switch v := e.Eval(ee).(type) {
		case *interval.Interval:
			scale.Append(v)
		default:
			panic(evalError(dsl.IllegalArrayElement, ee, issue.H{`actual`: dsl.TypeName(v)}))
		}
	}
	return scale
}

func (e *evaluator) evalCallExpression(expr *parser.CallExpression) dsl.Value {
	f, ok := dsl.LookupFunction(expr.Name())
	if !ok {
		panic(evalError(dsl.UnknownFunction, expr, issue.H{`name`: expr.Name()}))
	}
	args := make([]dsl.Value, len(expr.Arguments()))
	for i, a := range expr.Arguments() {
		args[i] = e.Eval(a)
	}
	return f.Call(e.session, expr, args)
}

func (e *evaluator) evalIndexExpression(expr *parser.IndexExpression) dsl.Value {
	target := e.Eval(expr.Target())
	scale, ok := target.(*interval.Scale)
	if !ok {
		panic(evalError(dsl.NotIndexable, expr.Target(), issue.H{`value`: dsl.TypeName(target)}))
	}
	iv := e.Eval(expr.Index())
	var index int
	n, ok := iv.(*interval.Interval)
	if ok {
		index, ok = n.Int()
	}
	if !ok {
		panic(evalError(dsl.IllegalIndex, expr.Index(), issue.H{`index`: dsl.ToString(iv)}))
	}
	size := scale.Len()
	at := index
	if at < 0 {
		at += size
	}
	if at < 0 || at >= size {
		panic(evalError(dsl.IndexOutOfRange, expr.Index(), issue.H{`index`: index, `size`: size}))
	}
	return scale.At(at)
}

func (e *evaluator) evalAssignmentExpression(expr *parser.AssignmentExpression) dsl.Value {
	if expr.Name() == dsl.ScaleName {
		panic(evalError(dsl.IllegalAssignment, expr, issue.H{`name`: expr.Name()}))
	}
	v := e.Eval(expr.Value())
	e.scope.Set(expr.Name(), v)
	return v
}

func evalError(code issue.Code, location issue.Location, args issue.H) issue.Reported {
	return dsl.Error(code, location, args)
}
