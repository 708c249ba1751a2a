// Package weave ties the evaluator, the builtin functions and the exporter
// together.
package weave

import (
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/evaluator"
	"github.com/lyraproj/sonicweave/repl"
	"github.com/lyraproj/sonicweave/scl"

	// Ensure that all functions are loaded
	_ "github.com/lyraproj/sonicweave/functions"
)

// NewDriver returns a driver for a new session that logs to the given logger
func NewDriver(logger dsl.Logger) *repl.Driver {
	return repl.NewDriver(evaluator.NewSession(logger))
}

// Do calls the given function with a driver for a new session
func Do(logger dsl.Logger, f func(d *repl.Driver)) {
	f(NewDriver(logger))
}

// Compile evaluates the source of a file as one block and returns the Scala
// document of the resulting scale. The title is used when the source doesn't
// set one.
func Compile(fileName, source, title string, logger dsl.Logger) (doc string, err error) {
	Do(logger, func(d *repl.Driver) {
		if _, err = d.WithFileName(fileName).EvaluateBlock(source); err != nil {
			return
		}
		if s := d.Session(); s.Title() == `` && title != `` {
			s.SetTitle(title)
		}
		doc, err = scl.Export(d.Session())
	})
	return
}
