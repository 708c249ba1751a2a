package utils

import (
	"unicode/utf8"
)

// StringReader reads runes from a string while keeping track of the byte offset
// of the next rune.
type StringReader struct {
	p int
	s string
}

func NewStringReader(s string) *StringReader {
	return &StringReader{p: 0, s: s}
}

// AtEnd returns true when all runes have been read
func (r *StringReader) AtEnd() bool {
	return r.p >= len(r.s)
}

// Next returns the next rune and advances the reader. It returns 0 when the end
// of the string is reached. An invalid encoding is returned as utf8.RuneError
// and skipped one byte at a time so that the reader always makes progress.
func (r *StringReader) Next() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c < utf8.RuneSelf {
		r.p++
		return c
	}
	c, size := utf8.DecodeRuneInString(r.s[r.p:])
	r.p += size
	return c
}

// Peek returns the next rune without advancing the reader
func (r *StringReader) Peek() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c < utf8.RuneSelf {
		return c
	}
	c, _ = utf8.DecodeRuneInString(r.s[r.p:])
	return c
}

func (r *StringReader) Pos() int {
	return r.p
}

// From returns the text between the given offset and the current position
func (r *StringReader) From(start int) string {
	return r.s[start:r.p]
}
