package repl_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/evaluator"
	"github.com/lyraproj/sonicweave/repl"

	// Ensure that all functions are loaded
	_ "github.com/lyraproj/sonicweave/functions"
)

func init() {
	dsl.NewFunction(`fail_with_string`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			panic(`string failure`)
		})
	dsl.NewFunction(`fail_with_error`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			panic(errors.New(`error failure`))
		})
	dsl.NewFunction(`fail_with_int`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			panic(42)
		})
}

func newDriver() *repl.Driver {
	return repl.NewDriver(evaluator.NewSession(dsl.NewArrayLogger()))
}

func ExampleDriver_EvaluateBlock() {
	d := newDriver()
	for _, block := range []string{`fifth = 3/2`, `fifth`, `fifth * 4/3`, `$`} {
		v, err := d.EvaluateBlock(block)
		switch {
		case err != nil:
			fmt.Println(err)
		case v == nil:
			fmt.Println(`no value`)
		default:
			fmt.Println(v)
		}
	}
	// Output:
	// no value
	// 3/2
	// 2
	// [3/2, 2]
}

func ExampleDriver_EvaluateBlock_controlFlow() {
	d := newDriver()
	_, err := d.EvaluateBlock(`3/2; break; 2`)
	fmt.Println(dsl.KindOf(err))
	fmt.Println(d.Session().Scale())
	// Output:
	// control flow violation
	// [3/2]
}

func TestEvaluateBlock_singleExpression(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock(`5/4`)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != `5/4` {
		t.Errorf(`expected 5/4, got %s`, v)
	}
	if d.Session().Scale().Len() != 1 {
		t.Errorf(`expected the value to be appended to the scale`)
	}
}

func TestEvaluateBlock_noLeak(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock(`(y = 2) * y`)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != `4` {
		t.Errorf(`expected 4, got %s`, v)
	}
	if _, ok := d.Session().Scope().Get(`y`); ok {
		t.Errorf(`binding made by the final expression leaked into the session`)
	}
	if _, err = d.EvaluateBlock(`y`); dsl.KindOf(err) != dsl.EvaluationError {
		t.Errorf(`expected y to be unknown, got %v`, err)
	}
}

func TestEvaluateBlock_prefixBindingsPersist(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock(`a = 9/8; b = 5/4; a * b`)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != `45/32` {
		t.Errorf(`expected 45/32, got %s`, v)
	}
	for _, name := range []string{`a`, `b`} {
		if _, ok := d.Session().Scope().Get(name); !ok {
			t.Errorf(`expected %s to be bound in the session`, name)
		}
	}
}

func TestEvaluateBlock_finalStatement(t *testing.T) {
	d := newDriver()
	for _, block := range []string{`x = 3/2`, `{ 3/2; 2 }`, `3/2; x = 2`} {
		v, err := d.EvaluateBlock(block)
		if err != nil {
			t.Fatalf(`%s: %s`, block, err)
		}
		if v != nil {
			t.Errorf(`%s: expected no value, got %s`, block, v)
		}
	}
	if s := d.Session().Scale().String(); s != `[3/2, 2, 3/2]` {
		t.Errorf(`expected the blocks to mutate the scale, got %s`, s)
	}
	if x, _ := d.Session().Scope().Get(`x`); x.String() != `2` {
		t.Errorf(`expected x to be rebound to 2, got %s`, x)
	}
}

func TestEvaluateBlock_empty(t *testing.T) {
	for _, block := range []string{``, `  `, `;`, `// nothing`} {
		v, err := newDriver().EvaluateBlock(block)
		if v != nil || err != nil {
			t.Errorf(`%q: expected neither value nor error, got %v, %v`, block, v, err)
		}
	}
}

func TestEvaluateBlock_interrupts(t *testing.T) {
	tests := []struct {
		block string
		code  issue.Code
		scale string
	}{
		{`return`, dsl.IllegalReturn, `[]`},
		{`break`, dsl.IllegalBreak, `[]`},
		{`return 3/2`, dsl.IllegalReturn, `[]`},
		{`3/2; return; 2`, dsl.IllegalReturn, `[3/2]`},
		{`3/2; { 5/4; break; 2 }; 2`, dsl.IllegalBreak, `[3/2, 5/4]`},
		{`3/2; { 5/4; break }`, dsl.IllegalBreak, `[3/2, 5/4]`},
	}
	for _, tt := range tests {
		d := newDriver()
		v, err := d.EvaluateBlock(tt.block)
		if v != nil {
			t.Errorf(`%s: expected no value together with an error, got %s`, tt.block, v)
		}
		ri, ok := err.(issue.Reported)
		if !ok || ri.Code() != tt.code {
			t.Errorf(`%s: expected %s, got %v`, tt.block, tt.code, err)
			continue
		}
		if dsl.KindOf(err) != dsl.ControlFlowViolation {
			t.Errorf(`%s: expected a control flow violation`, tt.block)
		}
		if s := d.Session().Scale().String(); s != tt.scale {
			t.Errorf(`%s: expected scale %s, got %s`, tt.block, tt.scale, s)
		}
	}
}

func TestEvaluateBlock_syntaxError(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock(`3/2; 5/`)
	if v != nil || dsl.KindOf(err) != dsl.SyntaxError {
		t.Fatalf(`expected a syntax error, got %v, %v`, v, err)
	}
	if d.Session().Scale().Len() != 0 {
		t.Errorf(`nothing must be evaluated when the block cannot be parsed`)
	}
	if loc := err.(issue.Reported).Location(); loc.File() != repl.InputName {
		t.Errorf(`expected the error to be located in %s, got %s`, repl.InputName, loc.File())
	}
}

func TestEvaluateBlock_evaluationError(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock(`3/2; 1/0; 2`)
	if v != nil {
		t.Errorf(`expected no value, got %s`, v)
	}
	ri, ok := err.(issue.Reported)
	if !ok || ri.Code() != dsl.ArithmeticError {
		t.Fatalf(`expected %s, got %v`, dsl.ArithmeticError, err)
	}
	if dsl.KindOf(err) != dsl.EvaluationError {
		t.Errorf(`expected an evaluation error`)
	}
	if s := d.Session().Scale().String(); s != `[3/2]` {
		t.Errorf(`expected the statements before the failure to take effect, got %s`, s)
	}

	if _, err = d.EvaluateBlock(`nosuch(1)`); err.(issue.Reported).Code() != dsl.UnknownFunction {
		t.Errorf(`expected %s, got %v`, dsl.UnknownFunction, err)
	}
}

func TestEvaluateBlock_fileName(t *testing.T) {
	d := newDriver().WithFileName(`tuning.sw`)
	_, err := d.EvaluateBlock("3/2;\nbreak")
	loc := err.(issue.Reported).Location()
	if loc.File() != `tuning.sw` || loc.Line() != 2 {
		t.Errorf(`expected the break to be located at tuning.sw:2, got %s:%d`, loc.File(), loc.Line())
	}
}

func TestEvaluateBlock_nulIsSyntaxError(t *testing.T) {
	d := newDriver()
	v, err := d.EvaluateBlock("3/2; \x00 return")
	if v != nil || dsl.KindOf(err) != dsl.SyntaxError {
		t.Fatalf(`expected a syntax error, got %v, %v`, v, err)
	}
	if d.Session().Scale().Len() != 0 {
		t.Errorf(`nothing must be evaluated when the block contains NUL`)
	}
}

func TestEvaluateBlock_builtinPanics(t *testing.T) {
	tests := []struct {
		block   string
		message string
	}{
		{`3/2; fail_with_string()`, `string failure`},
		{`3/2; fail_with_error()`, `error failure`},
	}
	for _, tt := range tests {
		d := newDriver()
		v, err := d.EvaluateBlock(tt.block)
		if v != nil {
			t.Errorf(`%s: expected no value, got %s`, tt.block, v)
		}
		ri, ok := err.(issue.Reported)
		if !ok || ri.Code() != dsl.EvaluationFailed {
			t.Errorf(`%s: expected %s, got %v`, tt.block, dsl.EvaluationFailed, err)
			continue
		}
		if !strings.Contains(ri.Error(), tt.message) {
			t.Errorf(`%s: expected the message to contain %q, got %s`, tt.block, tt.message, ri.Error())
		}
		if s := d.Session().Scale().String(); s != `[3/2]` {
			t.Errorf(`%s: expected the prefix to take effect, got %s`, tt.block, s)
		}
	}
}

func TestEvaluateBlock_foreignPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != 42 {
			t.Errorf(`expected the panic value 42 to propagate, got %v`, r)
		}
	}()
	newDriver().EvaluateBlock(`fail_with_int()`)
	t.Errorf(`expected a panic`)
}
