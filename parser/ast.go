package parser

import (
	"math/big"

	pp "github.com/lyraproj/puppet-parser/parser"
)

type (
	// Node is implemented by all statements and expressions. A node is also an
	// issue.Location so that it can be passed directly when an issue is reported.
	Node interface {
		File() string
		Line() int
		Pos() int

		// ByteOffset returns the offset of the node in the parsed source
		ByteOffset() int

		// ByteLength returns the number of bytes that the node spans in the parsed source
		ByteLength() int
	}

	Expression interface {
		Node
		isExpression()
	}

	Statement interface {
		Node
		isStatement()
	}

	Positioned struct {
		locator *pp.Locator
		offset  int
		length  int
	}

	Program struct {
		Positioned
		statements []Statement
	}

	ExpressionStatement struct {
		Positioned
		expression Expression
	}

	VariableDeclaration struct {
		Positioned
		name  string
		value Expression
	}

	BlockStatement struct {
		Positioned
		statements []Statement
	}

	ReturnStatement struct {
		Positioned
		value Expression
	}

	BreakStatement struct {
		Positioned
	}

	IntegerLiteral struct {
		Positioned
		value *big.Int
	}

	DecimalLiteral struct {
		Positioned
		value float64
	}

	StepLiteral struct {
		Positioned
		steps     int64
		divisions int64
	}

	StringLiteral struct {
		Positioned
		value string
	}

	ColorLiteral struct {
		Positioned
		value string
	}

	Identifier struct {
		Positioned
		name string
	}

	ArrayLiteral struct {
		Positioned
		elements []Expression
	}

	CallExpression struct {
		Positioned
		name      string
		arguments []Expression
	}

	BinaryExpression struct {
		Positioned
		operator string
		lhs      Expression
		rhs      Expression
	}

	UnaryExpression struct {
		Positioned
		operator string
		operand  Expression
	}

	IndexExpression struct {
		Positioned
		target Expression
		index  Expression
	}

	AssignmentExpression struct {
		Positioned
		name  string
		value Expression
	}
)

func (p *Positioned) File() string {
	return p.locator.File()
}

func (p *Positioned) Line() int {
	return p.locator.LineForOffset(p.offset)
}

func (p *Positioned) Pos() int {
	return p.locator.PosOnLine(p.offset)
}

func (p *Positioned) ByteOffset() int {
	return p.offset
}

func (p *Positioned) ByteLength() int {
	return p.length
}

// Statements returns the top level statements of the program in source order
func (e *Program) Statements() []Statement {
	return e.statements
}

func (e *ExpressionStatement) Expression() Expression {
	return e.expression
}

func (e *VariableDeclaration) Name() string {
	return e.name
}

func (e *VariableDeclaration) Value() Expression {
	return e.value
}

func (e *BlockStatement) Statements() []Statement {
	return e.statements
}

// Value returns the returned expression or nil when the return has no value
func (e *ReturnStatement) Value() Expression {
	return e.value
}

func (e *IntegerLiteral) Value() *big.Int {
	return e.value
}

// Value returns the value of the literal in cents
func (e *DecimalLiteral) Value() float64 {
	return e.value
}

func (e *StepLiteral) Steps() int64 {
	return e.steps
}

func (e *StepLiteral) Divisions() int64 {
	return e.divisions
}

func (e *StringLiteral) Value() string {
	return e.value
}

func (e *ColorLiteral) Value() string {
	return e.value
}

func (e *Identifier) Name() string {
	return e.name
}

func (e *ArrayLiteral) Elements() []Expression {
	return e.elements
}

func (e *CallExpression) Name() string {
	return e.name
}

func (e *CallExpression) Arguments() []Expression {
	return e.arguments
}

func (e *BinaryExpression) Operator() string {
	return e.operator
}

func (e *BinaryExpression) Lhs() Expression {
	return e.lhs
}

func (e *BinaryExpression) Rhs() Expression {
	return e.rhs
}

func (e *UnaryExpression) Operator() string {
	return e.operator
}

func (e *UnaryExpression) Operand() Expression {
	return e.operand
}

func (e *IndexExpression) Target() Expression {
	return e.target
}

func (e *IndexExpression) Index() Expression {
	return e.index
}

func (e *AssignmentExpression) Name() string {
	return e.name
}

func (e *AssignmentExpression) Value() Expression {
	return e.value
}

func (*ExpressionStatement) isStatement() {}
func (*VariableDeclaration) isStatement() {}
func (*BlockStatement) isStatement()      {}
func (*ReturnStatement) isStatement()     {}
func (*BreakStatement) isStatement()      {}

func (*IntegerLiteral) isExpression()       {}
func (*DecimalLiteral) isExpression()       {}
func (*StepLiteral) isExpression()          {}
func (*StringLiteral) isExpression()        {}
func (*ColorLiteral) isExpression()         {}
func (*Identifier) isExpression()           {}
func (*ArrayLiteral) isExpression()         {}
func (*CallExpression) isExpression()       {}
func (*BinaryExpression) isExpression()     {}
func (*UnaryExpression) isExpression()      {}
func (*IndexExpression) isExpression()      {}
func (*AssignmentExpression) isExpression() {}
