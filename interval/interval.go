package interval

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Interval is an immutable scale degree. The numeric value is either an exact
// rational or a cents measure. An interval may also carry a display color and
// a label.
type Interval struct {
	ratio *big.Rat
	cents float64
	color Color
	label string
}

var (
	ErrDivisionByZero = errors.New(`division by zero`)
	ErrNotLinear      = errors.New(`operation is only defined for rational intervals`)
	ErrNotPositive    = errors.New(`cents are undefined for a non-positive ratio`)
	ErrNotInteger     = errors.New(`exponent must be an integer`)
)

// maxOctaves bounds the exponent k when a cents value is collapsed into 2^k
const maxOctaves = 1023

var unison = FromInt(1)

// Unison returns the interval 1/1
func Unison() *Interval {
	return unison
}

// FromRatio returns the interval n/d. The given rational is copied.
func FromRatio(r *big.Rat) *Interval {
	return &Interval{ratio: new(big.Rat).Set(r)}
}

func FromInt(n int64) *Interval {
	return &Interval{ratio: big.NewRat(n, 1)}
}

func FromFraction(n, d int64) (*Interval, error) {
	if d == 0 {
		return nil, ErrDivisionByZero
	}
	return &Interval{ratio: big.NewRat(n, d)}, nil
}

// FromCents returns an interval measured in cents. A whole number of octaves
// is exactly 2^k and is therefore returned as a rational.
func FromCents(c float64) *Interval {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return &Interval{cents: c}
	}
	if o := c / 1200; o == math.Trunc(o) && math.Abs(o) <= maxOctaves {
		k := int(o)
		p := new(big.Int).Lsh(big.NewInt(1), uint(absInt(k)))
		r := new(big.Rat).SetInt(p)
		if k < 0 {
			r.Inv(r)
		}
		return &Interval{ratio: r}
	}
	return &Interval{cents: c}
}

// FromSteps returns n steps of the equal division of the octave into d parts
func FromSteps(n, d int64) (*Interval, error) {
	if d == 0 {
		return nil, ErrDivisionByZero
	}
	if n%d == 0 {
		return FromCents(float64(n/d) * 1200), nil
	}
	return FromCents(1200 * float64(n) / float64(d)), nil
}

// IsFractional returns true when the value is an exact rational
func (iv *Interval) IsFractional() bool {
	return iv.ratio != nil
}

// ToFraction returns a copy of the rational value. It panics if the interval
// is not fractional.
func (iv *Interval) ToFraction() *big.Rat {
	if iv.ratio == nil {
		panic(fmt.Sprintf(`interval %s is not fractional`, iv))
	}
	return new(big.Rat).Set(iv.ratio)
}

// TotalCents returns the size of the interval in cents
func (iv *Interval) TotalCents() (float64, error) {
	if iv.ratio == nil {
		return iv.cents, nil
	}
	if iv.ratio.Sign() <= 0 {
		return 0, ErrNotPositive
	}
	return ratioCents(iv.ratio), nil
}

// Color returns the color of the interval and true, or the empty color and false
// when no color has been attached
func (iv *Interval) Color() (Color, bool) {
	return iv.color, iv.color != ``
}

func (iv *Interval) Label() string {
	return iv.label
}

func (iv *Interval) WithColor(c Color) *Interval {
	cp := *iv
	cp.color = c
	return &cp
}

func (iv *Interval) WithLabel(label string) *Interval {
	cp := *iv
	cp.label = label
	return &cp
}

// Bare returns the value of the interval without color and label
func (iv *Interval) Bare() *Interval {
	if iv.color == `` && iv.label == `` {
		return iv
	}
	return &Interval{ratio: iv.ratio, cents: iv.cents}
}

// Mul stacks two intervals. The product of two rationals is exact, everything
// else is computed in cents.
func (iv *Interval) Mul(o *Interval) (*Interval, error) {
	if iv.ratio != nil && o.ratio != nil {
		return &Interval{ratio: new(big.Rat).Mul(iv.ratio, o.ratio)}, nil
	}
	a, b, err := bothCents(iv, o)
	if err != nil {
		return nil, err
	}
	return FromCents(a + b), nil
}

func (iv *Interval) Div(o *Interval) (*Interval, error) {
	if iv.ratio != nil && o.ratio != nil {
		if o.ratio.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return &Interval{ratio: new(big.Rat).Quo(iv.ratio, o.ratio)}, nil
	}
	a, b, err := bothCents(iv, o)
	if err != nil {
		return nil, err
	}
	return FromCents(a - b), nil
}

func (iv *Interval) Add(o *Interval) (*Interval, error) {
	if iv.ratio == nil || o.ratio == nil {
		return nil, ErrNotLinear
	}
	return &Interval{ratio: new(big.Rat).Add(iv.ratio, o.ratio)}, nil
}

func (iv *Interval) Sub(o *Interval) (*Interval, error) {
	if iv.ratio == nil || o.ratio == nil {
		return nil, ErrNotLinear
	}
	return &Interval{ratio: new(big.Rat).Sub(iv.ratio, o.ratio)}, nil
}

func (iv *Interval) Neg() (*Interval, error) {
	if iv.ratio == nil {
		return nil, ErrNotLinear
	}
	return &Interval{ratio: new(big.Rat).Neg(iv.ratio)}, nil
}

// Pow raises the interval to an integer power
func (iv *Interval) Pow(e *Interval) (*Interval, error) {
	n, ok := e.Int()
	if !ok {
		return nil, ErrNotInteger
	}
	if iv.ratio == nil {
		return FromCents(iv.cents * float64(n)), nil
	}
	if iv.ratio.Sign() == 0 && n < 0 {
		return nil, ErrDivisionByZero
	}
	num := new(big.Int).Exp(iv.ratio.Num(), big.NewInt(int64(absInt(n))), nil)
	den := new(big.Int).Exp(iv.ratio.Denom(), big.NewInt(int64(absInt(n))), nil)
	if n < 0 {
		num, den = den, num
	}
	return &Interval{ratio: new(big.Rat).SetFrac(num, den)}, nil
}

// Int returns the value as an int when the interval is a rational with denominator 1
func (iv *Interval) Int() (int, bool) {
	if iv.ratio == nil || !iv.ratio.IsInt() {
		return 0, false
	}
	n := iv.ratio.Num()
	if !n.IsInt64() || n.Int64() > math.MaxInt32 || n.Int64() < math.MinInt32 {
		return 0, false
	}
	return int(n.Int64()), true
}

// Compare compares the size of two intervals. Rationals are compared exactly.
func (iv *Interval) Compare(o *Interval) (int, error) {
	if iv.ratio != nil && o.ratio != nil {
		return iv.ratio.Cmp(o.ratio), nil
	}
	a, b, err := bothCents(iv, o)
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// ValueString returns the numeric part of String
func (iv *Interval) ValueString() string {
	if iv.ratio != nil {
		return iv.ratio.RatString()
	}
	s := strconv.FormatFloat(iv.cents, 'f', -1, 64)
	if iv.cents == math.Trunc(iv.cents) {
		s += `.`
	}
	return s
}

func (iv *Interval) String() string {
	b := bytes.NewBufferString(iv.ValueString())
	if iv.color != `` {
		b.WriteByte(' ')
		b.WriteString(string(iv.color))
	}
	if iv.label != `` {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(iv.label))
	}
	return b.String()
}

func bothCents(a, b *Interval) (float64, float64, error) {
	ac, err := a.TotalCents()
	if err != nil {
		return 0, 0, err
	}
	bc, err := b.TotalCents()
	if err != nil {
		return 0, 0, err
	}
	return ac, bc, nil
}

func ratioCents(r *big.Rat) float64 {
	// log2(n/d) computed on the parts keeps precision for large numerators
	n, _ := new(big.Float).SetInt(r.Num()).Float64()
	d, _ := new(big.Float).SetInt(r.Denom()).Float64()
	if !math.IsInf(n, 0) && !math.IsInf(d, 0) {
		return 1200 * (math.Log2(n) - math.Log2(d))
	}
	f, _ := r.Float64()
	return 1200 * math.Log2(f)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
