package dsl

import "github.com/lyraproj/issue/issue"

type InterruptKind int

const (
	Return InterruptKind = iota
	Break
)

func (k InterruptKind) String() string {
	if k == Break {
		return `break`
	}
	return `return`
}

// An Interrupt is the result of visiting a statement that requests a transfer of
// control out of the enclosing construct. A nil *Interrupt means that the
// statement completed normally.
type Interrupt struct {
	kind     InterruptKind
	location issue.Location
	value    Value
}

func NewReturn(location issue.Location, value Value) *Interrupt {
	return &Interrupt{Return, location, value}
}

func NewBreak(location issue.Location) *Interrupt {
	return &Interrupt{Break, location, nil}
}

func (i *Interrupt) Kind() InterruptKind {
	return i.kind
}

func (i *Interrupt) Location() issue.Location {
	return i.location
}

// Value returns the value of a return or nil
func (i *Interrupt) Value() Value {
	return i.value
}

// IllegalHere returns the issue that reports this interrupt in a context where
// there is nothing to return from or break out of
func (i *Interrupt) IllegalHere() issue.Reported {
	if i.kind == Break {
		return Error(IllegalBreak, i.location, issue.NO_ARGS)
	}
	return Error(IllegalReturn, i.location, issue.NO_ARGS)
}
