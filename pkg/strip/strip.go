// Package strip removes comments from source text without building a parser.
// Each scanner is a pure text-to-text function driven by a per-character
// automaton that tracks string and character literals, so comment-like text
// inside a literal survives verbatim. Malformed input never fails: an
// unterminated literal is copied through to end of input and an unterminated
// block comment swallows the remainder.
package strip

import "strings"

// scanMode is the automaton state while scanning. Exactly one mode is
// active at any position.
type scanMode int

const (
	modeCode scanMode = iota
	modeLineComment
	modeBlockComment
	modeString
	modeChar
)

// CLike strips // line comments and /* */ block comments. Double-quote and
// backtick strings and single-quote character literals are preserved, with
// backslash escapes preventing the following character from closing the
// literal. The newline terminating a line comment is kept.
func CLike(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	mode := modeCode
	var quote byte
	escape := false

	n := len(text)
	for i := 0; i < n; {
		ch := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		switch mode {
		case modeLineComment:
			if ch == '\n' {
				mode = modeCode
				out.WriteByte(ch)
			}
			i++
		case modeBlockComment:
			if ch == '*' && next == '/' {
				mode = modeCode
				i += 2
			} else {
				i++
			}
		case modeString, modeChar:
			out.WriteByte(ch)
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case mode == modeString && ch == quote:
				mode = modeCode
			case mode == modeChar && ch == '\'':
				mode = modeCode
			}
			i++
		default:
			switch {
			case ch == '/' && next == '/':
				mode = modeLineComment
				i += 2
			case ch == '/' && next == '*':
				mode = modeBlockComment
				i += 2
			case ch == '"' || ch == '`':
				mode = modeString
				quote = ch
				out.WriteByte(ch)
				i++
			case ch == '\'':
				mode = modeChar
				out.WriteByte(ch)
				i++
			default:
				out.WriteByte(ch)
				i++
			}
		}
	}
	return out.String()
}

// SQL strips -- line comments and /* */ block comments, preserving single-
// and double-quoted strings. The -- comment ends at the next newline, which
// is kept. SQL's doubled-quote escape ('') needs no special handling: the
// scanner sees it as one literal closing and another opening.
func SQL(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	mode := modeCode
	var quote byte
	escape := false

	n := len(text)
	for i := 0; i < n; {
		ch := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		switch mode {
		case modeBlockComment:
			if ch == '*' && next == '/' {
				mode = modeCode
				i += 2
			} else {
				i++
			}
		case modeString:
			out.WriteByte(ch)
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == quote:
				mode = modeCode
			}
			i++
		default:
			switch {
			case ch == '\'' || ch == '"':
				mode = modeString
				quote = ch
				out.WriteByte(ch)
				i++
			case ch == '/' && next == '*':
				mode = modeBlockComment
				i += 2
			case ch == '-' && next == '-':
				for i < n && text[i] != '\n' {
					i++
				}
			default:
				out.WriteByte(ch)
				i++
			}
		}
	}
	return out.String()
}
