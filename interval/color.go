package interval

import (
	"regexp"
	"strings"
)

// Color is a CSS style hex color such as #ff0000
type Color string

// Gray is used for scale degrees that have no color of their own
const Gray = Color(`#808080`)

var colorPattern = regexp.MustCompile(`\A#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})\z`)

// ParseColor validates the given hex color and returns it in lower case
func ParseColor(s string) (Color, bool) {
	if !colorPattern.MatchString(s) {
		return ``, false
	}
	return Color(strings.ToLower(s)), true
}

func (c Color) String() string {
	return string(c)
}
