package dsl

import (
	"fmt"
	"sort"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/interval"
)

type (
	// Dispatcher is the Go implementation of a builtin function
	Dispatcher func(c Session, args []Value) (Value, error)

	Function struct {
		name     string
		minArgs  int
		maxArgs  int
		dispatch Dispatcher
	}
)

var functions = map[string]*Function{}

// NewFunction registers a builtin function. A negative maxArgs means that the
// function accepts any number of arguments from minArgs and up.
func NewFunction(name string, minArgs, maxArgs int, dispatch Dispatcher) *Function {
	if _, ok := functions[name]; ok {
		panic(fmt.Sprintf(`attempt to redefine function %s()`, name))
	}
	f := &Function{name, minArgs, maxArgs, dispatch}
	functions[name] = f
	return f
}

// LookupFunction returns the builtin function with the given name
func LookupFunction(name string) (*Function, bool) {
	f, ok := functions[name]
	return f, ok
}

// FunctionNames returns the names of all builtin functions in alphabetical order
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *Function) Name() string {
	return f.name
}

// Call checks the argument count and calls the function. Errors returned by the
// function are raised as an issue.Reported located at the call.
func (f *Function) Call(c Session, location issue.Location, args []Value) Value {
	if len(args) < f.minArgs || f.maxArgs >= 0 && len(args) > f.maxArgs {
		panic(Error(IllegalArgumentCount, location, issue.H{`name`: f.name, `expected`: f.arity(), `actual`: len(args)}))
	}
	result, err := f.dispatch(c, args)
	if err != nil {
		if ri, ok := err.(issue.Reported); ok {
			panic(ri)
		}
		panic(Error(FunctionFailed, location, issue.H{`name`: f.name, `message`: err.Error()}))
	}
	return result
}

func (f *Function) arity() string {
	switch {
	case f.maxArgs < 0:
		return fmt.Sprintf(`at least %d`, f.minArgs)
	case f.minArgs == f.maxArgs:
		return fmt.Sprintf(`%d`, f.minArgs)
	default:
		return fmt.Sprintf(`%d to %d`, f.minArgs, f.maxArgs)
	}
}

// IntervalArg returns the argument at the given index as an interval
func IntervalArg(args []Value, index int) (*interval.Interval, error) {
	if iv, ok := args[index].(*interval.Interval); ok {
		return iv, nil
	}
	return nil, fmt.Errorf(`expected argument %d to be an Interval, got %s`, index+1, TypeName(args[index]))
}

// IntArg returns the argument at the given index as an integer
func IntArg(args []Value, index int) (int, error) {
	iv, err := IntervalArg(args, index)
	if err != nil {
		return 0, err
	}
	n, ok := iv.Int()
	if !ok {
		return 0, fmt.Errorf(`expected argument %d to be an integer, got %s`, index+1, iv)
	}
	return n, nil
}
