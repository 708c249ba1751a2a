package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
	"github.com/lyraproj/sonicweave/parser"
)

func (e *evaluator) evalBinaryExpression(expr *parser.BinaryExpression) dsl.Value {
	op := expr.Operator()
	lhs := e.operand(op, expr.Lhs())
	rhs := e.operand(op, expr.Rhs())

	var result *interval.Interval
	var err error
	switch op {
	case `+`:
		result, err = lhs.Add(rhs)
	case `-`:
		result, err = lhs.Sub(rhs)
	case `*`:
		result, err = lhs.Mul(rhs)
	case `/`:
		result, err = lhs.Div(rhs)
	case `^`:
		result, err = lhs.Pow(rhs)
	default:
		panic(evalError(dsl.OperatorNotApplicable, expr, issue.H{`operator`: op, `left`: dsl.TypeName(lhs)}))
	}
	if err != nil {
		panic(evalError(dsl.ArithmeticError, expr, issue.H{`message`: err.Error()}))
	}
	return result
}

func (e *evaluator) evalUnaryExpression(expr *parser.UnaryExpression) dsl.Value {
	operand := e.operand(expr.Operator(), expr.Operand())
	result, err := operand.Neg()
	if err != nil {
		panic(evalError(dsl.ArithmeticError, expr, issue.H{`message`: err.Error()}))
	}
	return result
}

// operand evaluates the given expression and ensures that the result is an interval
func (e *evaluator) operand(op string, expr parser.Expression) *interval.Interval {
	v := e.Eval(expr)
	if iv, ok := v.(*interval.Interval); ok {
		return iv
	}
	panic(evalError(dsl.OperatorNotApplicable, expr, issue.H{`operator`: op, `left`: dsl.TypeName(v)}))
}
