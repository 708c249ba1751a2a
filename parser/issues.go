package parser

import "github.com/lyraproj/issue/issue"

const (
	ParseError = `SW_PARSE_ERROR`
)

func init() {
	issue.Hard(ParseError, `%{message}`)
}
