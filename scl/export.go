// Package scl writes scales in the Scala tuning file format.
package scl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
)

// UntitledTuning is the title used when the scale has none
const UntitledTuning = `Untitled tuning`

const colorHeader = `! A list of key colors, ascending from 1/1`

// Source is the read-only view of a session that the exporter needs. A
// dsl.Session is a Source.
type Source interface {
	Title() string
	Scale() *interval.Scale
	Relative(iv *interval.Interval) *interval.Interval
}

// Export returns the Scala .scl document for the current scale of the given
// source. The source is not modified.
func Export(src Source) (string, error) {
	return ExportWithTitle(src, UntitledTuning)
}

// ExportWithTitle is like Export but uses the given title when the source has no
// title of its own. The returned error, if any, is an issue.Reported.
func ExportWithTitle(src Source, fallbackTitle string) (string, error) {
	title := src.Title()
	if title == `` {
		title = fallbackTitle
	}
	scale := src.Scale().Snapshot()

	lines := make([]string, 0, len(scale)+8)
	lines = append(lines,
		`!Created using `+dsl.Banner(),
		`!`,
		title,
		` `+strconv.Itoa(len(scale)),
		`!`)

	keyColors := make([]string, 0, len(scale))
	useColors := false
	for _, iv := range scale {
		if c, ok := iv.Color(); ok {
			keyColors = append(keyColors, c.String())
			useColors = true
		} else {
			keyColors = append(keyColors, interval.Gray.String())
		}
		value, err := degreeValue(src.Relative(iv))
		if err != nil {
			return ``, dsl.Error(dsl.MalformedInterval, nil, issue.H{`interval`: iv.String(), `message`: err.Error()})
		}
		line := ` ` + value
		if label := iv.Label(); label != `` {
			line += ` ` + label
		}
		lines = append(lines, line)
	}

	if useColors {
		// The list starts at 1/1 which is the last degree of the scale
		last := len(keyColors) - 1
		rotated := make([]string, 0, len(keyColors))
		rotated = append(rotated, keyColors[last])
		rotated = append(rotated, keyColors[:last]...)
		lines = append(lines, colorHeader, `! `+strings.Join(rotated, ` `))
	}
	lines = append(lines, ``)
	return strings.Join(lines, "\n"), nil
}

// degreeValue returns an exact ratio as n/d and anything else as cents with six decimals
func degreeValue(relative *interval.Interval) (string, error) {
	if relative.IsFractional() {
		f := relative.ToFraction()
		return f.Abs(f).String(), nil
	}
	cents, err := relative.TotalCents()
	if err != nil {
		return ``, err
	}
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return ``, fmt.Errorf(`%v cents is not a finite value`, cents)
	}
	return strconv.FormatFloat(cents, 'f', 6, 64), nil
}
