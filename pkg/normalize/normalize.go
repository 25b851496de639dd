// Package normalize canonicalizes whitespace in file content before it is
// added to the combined document.
package normalize

import (
	"strings"
	"unicode"
)

// Text canonicalizes line endings to LF, strips a leading byte-order mark,
// expands tabs to stops every tabWidth columns, trims trailing whitespace
// from each line, collapses runs of blank lines to at most maxBlankRun, and
// trims blank lines from both ends of the document. A nonempty result ends
// with exactly one newline; all-blank input yields "", which tells the
// caller to omit the file entirely.
func Text(s string, tabWidth, maxBlankRun int) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	collapsed := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimRightFunc(expandTabs(line, tabWidth), unicode.IsSpace)
		if line == "" {
			blankRun++
			if blankRun <= maxBlankRun {
				collapsed = append(collapsed, "")
			}
			continue
		}
		blankRun = 0
		collapsed = append(collapsed, line)
	}

	out := strings.TrimSpace(strings.Join(collapsed, "\n"))
	if out == "" {
		return ""
	}
	return out + "\n"
}

// expandTabs replaces each tab with spaces up to the next multiple of
// tabWidth columns. Columns are counted in runes and reset per line; a
// non-positive tabWidth deletes tabs.
func expandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	if tabWidth <= 0 {
		return strings.ReplaceAll(line, "\t", "")
	}

	var b strings.Builder
	b.Grow(len(line))
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
