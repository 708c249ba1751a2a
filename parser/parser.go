package parser

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/lyraproj/issue/issue"
	pp "github.com/lyraproj/puppet-parser/parser"
	"github.com/lyraproj/sonicweave/utils"
)

const (
	keywordReturn = `return`
	keywordBreak  = `break`
)

type parser struct {
	locator *pp.Locator
	tokens  []token
	pos     int
}

// Parse parses the given source into a Program. The returned error, if any, is
// an issue.Reported with code ParseError that is located at the offending input.
func Parse(filename, source string) (program *Program, err error) {
	p := &parser{locator: pp.NewLocator(filename, source)}

	sr := utils.NewStringReader(source)
	if serr := scan(sr, func(t token) error {
		p.tokens = append(p.tokens, t)
		return nil
	}); serr != nil {
		se := serr.(*scanError)
		return nil, p.errorAt(se.offset, se.message)
	}

	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				program = nil
				err = ri
				return
			}
			panic(r)
		}
	}()

	program = &Program{p.positioned(0, len(source)), p.parseStatements(end)}
	return
}

func (p *parser) errorAt(offset int, message string) issue.Reported {
	return issue.NewReported(ParseError, issue.SEVERITY_ERROR, issue.H{`message`: message},
		issue.NewLocation(p.locator.File(), p.locator.LineForOffset(offset), p.locator.PosOnLine(offset)))
}

func (p *parser) fail(t token, format string, args ...interface{}) {
	panic(p.errorAt(t.offset, fmt.Sprintf(format, args...)))
}

func (p *parser) unexpected(t token, expected string) {
	if t.i == end {
		p.fail(t, `expected %s, got end of input`, expected)
	}
	p.fail(t, `expected %s, got '%s'`, expected, t.s)
}

func (p *parser) positioned(start, stop int) Positioned {
	return Positioned{p.locator, start, stop - start}
}

func (p *parser) from(start token) Positioned {
	return p.positioned(start.offset, p.tokens[p.pos-1].end)
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(tt tokenType) bool {
	return p.tokens[p.pos].i == tt
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.i != end {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt tokenType, expected string) token {
	t := p.peek()
	if t.i != tt {
		p.unexpected(t, expected)
	}
	return p.next()
}

func isKeyword(s string) bool {
	return s == keywordReturn || s == keywordBreak
}

// parseStatements parses statements until the closing token is found. The closing
// token itself is not consumed.
func (p *parser) parseStatements(closing tokenType) []Statement {
	statements := make([]Statement, 0, 4)
	for {
		for p.at(semicolon) {
			p.next()
		}
		if p.at(closing) {
			return statements
		}
		s := p.parseStatement()
		statements = append(statements, s)
		if _, ok := s.(*BlockStatement); ok {
			continue
		}
		switch {
		case p.at(semicolon):
			p.next()
		case p.at(closing):
			return statements
		default:
			p.unexpected(p.peek(), `';'`)
		}
	}
}

func (p *parser) parseStatement() Statement {
	t := p.peek()
	switch t.i {
	case leftCurlyBrace:
		p.next()
		body := p.parseStatements(rightCurlyBrace)
		p.expect(rightCurlyBrace, `'}'`)
		return &BlockStatement{p.from(t), body}
	case identifier:
		switch t.s {
		case keywordReturn:
			p.next()
			var value Expression
			switch p.peek().i {
			case semicolon, rightCurlyBrace, end:
			default:
				value = p.parseExpression()
			}
			return &ReturnStatement{p.from(t), value}
		case keywordBreak:
			p.next()
			return &BreakStatement{p.from(t)}
		}
		if p.peekAt(1).i == equal {
			p.next()
			p.next()
			value := p.parseExpression()
			return &VariableDeclaration{p.from(t), t.s, value}
		}
	}
	expr := p.parseExpression()
	return &ExpressionStatement{p.from(t), expr}
}

func (p *parser) parseExpression() Expression {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() Expression {
	start := p.peek()
	lhs := p.parseMultiplicative()
	for p.at(plus) || p.at(minus) {
		op := p.next()
		rhs := p.parseMultiplicative()
		lhs = &BinaryExpression{p.from(start), op.s, lhs, rhs}
	}
	return lhs
}

func (p *parser) parseMultiplicative() Expression {
	start := p.peek()
	lhs := p.parseUnary()
	for p.at(star) || p.at(slash) {
		op := p.next()
		rhs := p.parseUnary()
		lhs = &BinaryExpression{p.from(start), op.s, lhs, rhs}
	}
	return lhs
}

func (p *parser) parseUnary() Expression {
	start := p.peek()
	if start.i == minus {
		p.next()
		operand := p.parseUnary()
		return &UnaryExpression{p.from(start), `-`, operand}
	}
	return p.parsePower()
}

func (p *parser) parsePower() Expression {
	start := p.peek()
	base := p.parsePostfix()
	if p.at(caret) {
		p.next()
		exponent := p.parseUnary()
		return &BinaryExpression{p.from(start), `^`, base, exponent}
	}
	return base
}

func (p *parser) parsePostfix() Expression {
	start := p.peek()
	expr := p.parsePrimary()
	for p.at(leftBracket) {
		p.next()
		index := p.parseExpression()
		p.expect(rightBracket, `']'`)
		expr = &IndexExpression{p.from(start), expr, index}
	}
	return expr
}

func (p *parser) parsePrimary() Expression {
	t := p.next()
	switch t.i {
	case integer:
		n, ok := new(big.Int).SetString(t.s, 10)
		if !ok {
			p.fail(t, `malformed integer '%s'`, t.s)
		}
		if p.at(backslash) {
			p.next()
			d := p.expect(integer, `an integer`)
			return &StepLiteral{p.from(t), p.toInt64(t), p.toInt64(d)}
		}
		return &IntegerLiteral{p.from(t), n}
	case decimal:
		f, err := strconv.ParseFloat(t.s, 64)
		if err != nil {
			p.fail(t, `malformed decimal '%s'`, t.s)
		}
		return &DecimalLiteral{p.from(t), f}
	case stringLiteral:
		return &StringLiteral{p.from(t), t.s}
	case colorLiteral:
		return &ColorLiteral{p.from(t), t.s}
	case identifier:
		if isKeyword(t.s) {
			p.fail(t, `'%s' is not allowed in an expression`, t.s)
		}
		if p.at(leftParen) {
			p.next()
			args := p.parseList(rightParen, `')'`)
			return &CallExpression{p.from(t), t.s, args}
		}
		return &Identifier{p.from(t), t.s}
	case leftBracket:
		elements := p.parseList(rightBracket, `']'`)
		return &ArrayLiteral{p.from(t), elements}
	case leftParen:
		if n := p.peek(); n.i == identifier && !isKeyword(n.s) && p.peekAt(1).i == equal {
			p.next()
			p.next()
			value := p.parseExpression()
			p.expect(rightParen, `')'`)
			return &AssignmentExpression{p.from(t), n.s, value}
		}
		expr := p.parseExpression()
		p.expect(rightParen, `')'`)
		return expr
	}
	p.unexpected(t, `an expression`)
	return nil
}

// parseList parses comma separated expressions up to and including the closing token
func (p *parser) parseList(closing tokenType, expected string) []Expression {
	list := make([]Expression, 0, 4)
	if p.at(closing) {
		p.next()
		return list
	}
	for {
		list = append(list, p.parseExpression())
		if p.at(comma) {
			p.next()
			continue
		}
		p.expect(closing, fmt.Sprintf(`',' or %s`, expected))
		return list
	}
}

func (p *parser) toInt64(t token) int64 {
	n, err := strconv.ParseInt(t.s, 10, 64)
	if err != nil {
		p.fail(t, `integer '%s' is out of range`, t.s)
	}
	return n
}
