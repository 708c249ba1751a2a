package parser_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/parser"
)

func ExampleParse() {
	program, err := parser.Parse(`example.sw`, "a = 3/2;\n{ 5/4 }\nreturn a")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range program.Statements() {
		fmt.Printf("%T at %d:%d\n", s, s.Line(), s.Pos())
	}
	// Output:
	// *parser.VariableDeclaration at 1:1
	// *parser.BlockStatement at 2:1
	// *parser.ReturnStatement at 3:1
}

func TestParse_precedence(t *testing.T) {
	program, err := parser.Parse(``, `-2^3 * 4 + 1`)
	if err != nil {
		t.Fatal(err)
	}
	stmts := program.Statements()
	if len(stmts) != 1 {
		t.Fatalf(`expected 1 statement, got %d`, len(stmts))
	}
	add, ok := stmts[0].(*parser.ExpressionStatement).Expression().(*parser.BinaryExpression)
	if !ok || add.Operator() != `+` {
		t.Fatalf(`expected '+' at the top`)
	}
	mul, ok := add.Lhs().(*parser.BinaryExpression)
	if !ok || mul.Operator() != `*` {
		t.Fatalf(`expected '*' below '+'`)
	}
	neg, ok := mul.Lhs().(*parser.UnaryExpression)
	if !ok {
		t.Fatalf(`expected unary minus below '*'`)
	}
	if pow, ok := neg.Operand().(*parser.BinaryExpression); !ok || pow.Operator() != `^` {
		t.Fatalf(`expected '^' below unary minus`)
	}
}

func TestParse_literals(t *testing.T) {
	program, err := parser.Parse(``, `[7\12, 701.955, #ff0000, "fifth", edo(12), $[1], (x = 2)]`)
	if err != nil {
		t.Fatal(err)
	}
	arr := program.Statements()[0].(*parser.ExpressionStatement).Expression().(*parser.ArrayLiteral)
	expected := []string{
		`*parser.StepLiteral`,
		`*parser.DecimalLiteral`,
		`*parser.ColorLiteral`,
		`*parser.StringLiteral`,
		`*parser.CallExpression`,
		`*parser.IndexExpression`,
		`*parser.AssignmentExpression`,
	}
	if len(arr.Elements()) != len(expected) {
		t.Fatalf(`expected %d elements, got %d`, len(expected), len(arr.Elements()))
	}
	for i, e := range arr.Elements() {
		if tn := fmt.Sprintf(`%T`, e); tn != expected[i] {
			t.Errorf(`element %d: expected %s, got %s`, i, expected[i], tn)
		}
	}
	step := arr.Elements()[0].(*parser.StepLiteral)
	if step.Steps() != 7 || step.Divisions() != 12 {
		t.Errorf(`expected 7\12, got %d\%d`, step.Steps(), step.Divisions())
	}
}

func TestParse_separators(t *testing.T) {
	program, err := parser.Parse(``, `;; 1; {2; 3;} 4;`)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(program.Statements()); n != 3 {
		t.Errorf(`expected 3 statements, got %d`, n)
	}
	program, err = parser.Parse(``, "  // nothing here\n")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(program.Statements()); n != 0 {
		t.Errorf(`expected no statements, got %d`, n)
	}
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		source string
		line   int
		pos    int
	}{
		{`3/2 5/4`, 1, 5},
		{"1;\n(2", 2, 3},
		{`{ 1`, 1, 4},
		{`x = return`, 1, 5},
		{"1;\n\"open", 2, 1},
		{"3/2; \x00 return", 1, 6},
		{"3/2 // bad \xff", 1, 12},
		{"3/2; \"fifth\xff\"", 1, 12},
	}
	for _, tt := range tests {
		_, err := parser.Parse(`test.sw`, tt.source)
		if err == nil {
			t.Errorf(`%q: expected an error`, tt.source)
			continue
		}
		ri, ok := err.(issue.Reported)
		if !ok {
			t.Errorf(`%q: expected an issue.Reported, got %T`, tt.source, err)
			continue
		}
		if ri.Code() != parser.ParseError {
			t.Errorf(`%q: expected code %s, got %s`, tt.source, parser.ParseError, ri.Code())
		}
		loc := ri.Location()
		if loc == nil || loc.Line() != tt.line || loc.Pos() != tt.pos {
			t.Errorf(`%q: expected location %d:%d, got %v`, tt.source, tt.line, tt.pos, loc)
		}
	}
}
