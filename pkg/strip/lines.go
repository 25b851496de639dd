package strip

import "strings"

// HashLines strips # comments that run to end of line, for shell-style
// languages. A # inside a single- or double-quoted string is kept.
func HashLines(text string) string {
	lines := strings.Split(normalizeNewlines(text), "\n")
	for i, line := range lines {
		lines[i] = stripHashLine(line)
	}
	return strings.Join(lines, "\n")
}

// Python strips # line comments outside string literals. When
// stripDocstrings is set, triple-quoted regions are removed wholesale. This
// removes any triple-quoted string, not only docstrings in canonical
// leading position; it is a deliberate approximation, as is the
// line-oriented handling of a triple quote that opens and closes on the
// same line.
func Python(text string, stripDocstrings bool) string {
	lines := strings.Split(normalizeNewlines(text), "\n")
	out := make([]string, 0, len(lines))

	inTriple := false
	tripleQuote := ""
	for _, line := range lines {
		if stripDocstrings {
			if inTriple {
				idx := strings.Index(line, tripleQuote)
				if idx == -1 {
					continue
				}
				line = line[idx+3:]
				inTriple = false
			}
			for _, q := range []string{"'''", `"""`} {
				if idx := strings.Index(line, q); idx != -1 {
					inTriple = true
					tripleQuote = q
					line = line[:idx]
					break
				}
			}
		}
		out = append(out, stripHashLine(line))
	}
	return strings.Join(out, "\n")
}

// stripHashLine truncates one line at the first # outside a string literal.
func stripHashLine(line string) string {
	var buf strings.Builder
	buf.Grow(len(line))

	inString := false
	var quote byte
	escape := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inString {
			buf.WriteByte(ch)
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == quote:
				inString = false
			}
			continue
		}
		if ch == '\'' || ch == '"' {
			inString = true
			quote = ch
			buf.WriteByte(ch)
			continue
		}
		if ch == '#' {
			break
		}
		buf.WriteByte(ch)
	}
	return buf.String()
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
