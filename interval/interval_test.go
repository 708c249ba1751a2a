package interval_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/lyraproj/sonicweave/interval"
)

func ExampleFromCents() {
	fmt.Println(interval.FromCents(701.955))
	fmt.Println(interval.FromCents(700))
	fmt.Println(interval.FromCents(2400))
	fmt.Println(interval.FromCents(-1200))
	// Output:
	// 701.955
	// 700.
	// 4
	// 1/2
}

func ExampleFromSteps() {
	iv, _ := interval.FromSteps(7, 12)
	fmt.Println(iv, iv.IsFractional())
	iv, _ = interval.FromSteps(12, 12)
	fmt.Println(iv, iv.IsFractional())
	// Output:
	// 700. false
	// 2 true
}

func ExampleInterval_String() {
	iv, _ := interval.FromFraction(3, 2)
	fmt.Println(iv.WithColor(`#ff0000`).WithLabel(`fifth`))
	// Output: 3/2 #ff0000 "fifth"
}

func ExampleInterval_Mul() {
	fifth, _ := interval.FromFraction(3, 2)
	third, _ := interval.FromFraction(5, 4)
	p, _ := fifth.Mul(third)
	fmt.Println(p)
	step, _ := interval.FromSteps(1, 12)
	p, _ = step.Mul(interval.FromCents(100))
	fmt.Println(p)
	// Output:
	// 15/8
	// 200.
}

func TestInterval_TotalCents(t *testing.T) {
	fifth, _ := interval.FromFraction(3, 2)
	c, err := fifth.TotalCents()
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprintf(`%.6f`, c) != `701.955001` {
		t.Errorf(`expected 701.955001, got %.6f`, c)
	}
	if _, err = interval.FromInt(-2).TotalCents(); err != interval.ErrNotPositive {
		t.Errorf(`expected ErrNotPositive, got %v`, err)
	}
}

func TestInterval_Div(t *testing.T) {
	if _, err := interval.FromInt(3).Div(interval.FromInt(0)); err != interval.ErrDivisionByZero {
		t.Errorf(`expected ErrDivisionByZero, got %v`, err)
	}
	q, err := interval.FromInt(3).Div(interval.FromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if q.ToFraction().Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf(`expected 3/2, got %s`, q)
	}
}

func TestInterval_Add(t *testing.T) {
	if _, err := interval.FromCents(100).Add(interval.FromInt(1)); err != interval.ErrNotLinear {
		t.Errorf(`expected ErrNotLinear, got %v`, err)
	}
	s, _ := interval.FromInt(1).Add(interval.FromInt(1))
	if s.String() != `2` {
		t.Errorf(`expected 2, got %s`, s)
	}
}

func TestInterval_Pow(t *testing.T) {
	p, err := interval.FromInt(2).Pow(interval.FromInt(-2))
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != `1/4` {
		t.Errorf(`expected 1/4, got %s`, p)
	}
	half, _ := interval.FromFraction(1, 2)
	if _, err = interval.FromInt(2).Pow(half); err != interval.ErrNotInteger {
		t.Errorf(`expected ErrNotInteger, got %v`, err)
	}
}

func TestInterval_Bare(t *testing.T) {
	iv := interval.FromInt(2).WithColor(`#00ff00`).WithLabel(`octave`)
	b := iv.Bare()
	if _, ok := b.Color(); ok || b.Label() != `` {
		t.Errorf(`expected no formatting, got %s`, b)
	}
	if c, _ := iv.Color(); c != `#00ff00` {
		t.Errorf(`original interval must keep its color`)
	}
}

func TestScale_Sort(t *testing.T) {
	fifth, _ := interval.FromFraction(3, 2)
	s := interval.NewScale(interval.FromInt(2), interval.FromCents(100), fifth)
	if err := s.Sort(); err != nil {
		t.Fatal(err)
	}
	if s.String() != `[100., 3/2, 2]` {
		t.Errorf(`unexpected order %s`, s)
	}
	s.Reverse()
	if s.String() != `[2, 3/2, 100.]` {
		t.Errorf(`unexpected order %s`, s)
	}
	s.Append(interval.FromInt(-1))
	if s.Sort() == nil {
		t.Errorf(`expected sort of a negative ratio with cents to fail`)
	}
	if s.Len() != 4 || s.At(0).String() != `2` {
		t.Errorf(`failed sort must leave the scale untouched, got %s`, s)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := interval.ParseColor(`#FF0000`); !ok || c != `#ff0000` {
		t.Errorf(`expected #ff0000, got %s`, c)
	}
	if _, ok := interval.ParseColor(`#ff00`); ok {
		t.Errorf(`expected #ff00 to be rejected`)
	}
}
