package parser

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/lyraproj/sonicweave/utils"
)

type tokenType int

const (
	end tokenType = iota
	identifier
	integer
	decimal
	stringLiteral
	colorLiteral
	leftParen
	rightParen
	leftBracket
	rightBracket
	leftCurlyBrace
	rightCurlyBrace
	comma
	semicolon
	equal
	plus
	minus
	star
	slash
	backslash
	caret
)

func (t tokenType) String() (s string) {
	switch t {
	case end:
		s = "end"
	case identifier:
		s = "identifier"
	case integer:
		s = "integer"
	case decimal:
		s = "decimal"
	case stringLiteral:
		s = "string"
	case colorLiteral:
		s = "color"
	case leftParen:
		s = "leftParen"
	case rightParen:
		s = "rightParen"
	case leftBracket:
		s = "leftBracket"
	case rightBracket:
		s = "rightBracket"
	case leftCurlyBrace:
		s = "leftCurlyBrace"
	case rightCurlyBrace:
		s = "rightCurlyBrace"
	case comma:
		s = "comma"
	case semicolon:
		s = "semicolon"
	case equal:
		s = "equal"
	case plus:
		s = "plus"
	case minus:
		s = "minus"
	case star:
		s = "star"
	case slash:
		s = "slash"
	case backslash:
		s = "backslash"
	case caret:
		s = "caret"
	default:
		s = "*UNKNOWN TOKEN*"
	}
	return
}

type token struct {
	s      string
	i      tokenType
	offset int
	end    int
}

func (t token) String() string {
	return fmt.Sprintf("%s: '%s'", t.i.String(), t.s)
}

// scanError is returned by scan. The offset is the byte offset of the offending input.
type scanError struct {
	offset  int
	message string
}

func (e *scanError) Error() string {
	return e.message
}

var punctuation = map[rune]tokenType{
	'(':  leftParen,
	')':  rightParen,
	'[':  leftBracket,
	']':  rightBracket,
	'{':  leftCurlyBrace,
	'}':  rightCurlyBrace,
	',':  comma,
	';':  semicolon,
	'=':  equal,
	'+':  plus,
	'-':  minus,
	'*':  star,
	'\\': backslash,
	'^':  caret,
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// scan reads tokens from the given reader and passes them to the token function. The
// final token passed is always the end token unless an error occurs first.
func scan(sr *utils.StringReader, tf func(t token) error) (err error) {
	buf := bytes.NewBufferString(``)

	emit := func(s string, i tokenType, start int) error {
		return tf(token{s, i, start, sr.Pos()})
	}

	for {
		start := sr.Pos()
		if sr.AtEnd() {
			return emit(``, end, start)
		}
		r := sr.Next()
		if r == utf8.RuneError {
			return &scanError{start, `unicode error`}
		}

		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			continue

		case r == '/':
			switch sr.Peek() {
			case '/':
				for !sr.AtEnd() {
					at := sr.Pos()
					if r = sr.Next(); r == '\n' {
						break
					}
					if r == utf8.RuneError {
						return &scanError{at, `unicode error`}
					}
				}
				continue
			case '*':
				sr.Next()
				for {
					if sr.AtEnd() {
						return &scanError{start, `unterminated comment`}
					}
					at := sr.Pos()
					r = sr.Next()
					if r == utf8.RuneError {
						return &scanError{at, `unicode error`}
					}
					if r == '*' && sr.Peek() == '/' {
						sr.Next()
						break
					}
				}
				continue
			}
			err = emit(`/`, slash, start)

		case r == '"' || r == '\'':
			q := r
			buf.Reset()
			for {
				if sr.AtEnd() {
					return &scanError{start, `unterminated string`}
				}
				at := sr.Pos()
				r = sr.Next()
				if r == q {
					break
				}
				switch r {
				case '\n':
					return &scanError{start, `unterminated string`}
				case utf8.RuneError:
					return &scanError{at, `unicode error`}
				case 0:
					return &scanError{at, fmt.Sprintf(`unexpected character %q`, r)}
				case '\\':
					if sr.AtEnd() {
						return &scanError{start, `unterminated string`}
					}
					at = sr.Pos()
					e := sr.Next()
					switch e {
					case 'n':
						buf.WriteByte('\n')
					case 't':
						buf.WriteByte('\t')
					case '\\', '"', '\'':
						buf.WriteRune(e)
					case utf8.RuneError:
						return &scanError{at, `unicode error`}
					default:
						return &scanError{at, fmt.Sprintf(`illegal escape '\%c'`, e)}
					}
				default:
					buf.WriteRune(r)
				}
			}
			err = emit(buf.String(), stringLiteral, start)

		case r == '#':
			for isHexDigit(sr.Peek()) {
				sr.Next()
			}
			if isIdentifierPart(sr.Peek()) {
				return &scanError{start, fmt.Sprintf(`malformed color '%s%c'`, sr.From(start), sr.Peek())}
			}
			err = emit(sr.From(start), colorLiteral, start)

		case isDigit(r):
			for isDigit(sr.Peek()) {
				sr.Next()
			}
			tt := tokenType(integer)
			if sr.Peek() == '.' {
				sr.Next()
				tt = decimal
				for isDigit(sr.Peek()) {
					sr.Next()
				}
			}
			if isIdentifierStart(sr.Peek()) || sr.Peek() == '.' {
				return &scanError{sr.Pos(), fmt.Sprintf(`unexpected character '%c'`, sr.Peek())}
			}
			err = emit(sr.From(start), tt, start)

		case r == '$':
			err = emit(`$`, identifier, start)

		case isIdentifierStart(r):
			for isIdentifierPart(sr.Peek()) {
				sr.Next()
			}
			err = emit(sr.From(start), identifier, start)

		default:
			tt, ok := punctuation[r]
			if !ok {
				return &scanError{start, fmt.Sprintf(`unexpected character %q`, r)}
			}
			err = emit(string(r), tt, start)
		}
		if err != nil {
			return err
		}
	}
}
