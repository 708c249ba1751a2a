package dsl

import (
	"strconv"

	"github.com/lyraproj/sonicweave/interval"
)

type (
	// Value is the result of evaluating an expression. The possible values are
	// *interval.Interval, interval.Color, Text, *interval.Scale, and nil which
	// represents no value.
	Value interface {
		String() string
	}

	// Text is a string value. It labels scale degrees or names the scale.
	Text string
)

func (t Text) String() string {
	return strconv.Quote(string(t))
}

// TypeName returns the name of the type of the given value for use in messages
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return `Undef`
	case *interval.Interval:
		return `Interval`
	case interval.Color:
		return `Color`
	case Text:
		return `Text`
	case *interval.Scale:
		return `Scale`
	default:
		return `Unknown`
	}
}

// ToString returns the display form of a value. No value is displayed as the
// empty string.
func ToString(v Value) string {
	if v == nil {
		return ``
	}
	return v.String()
}
