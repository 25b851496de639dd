package flatten

import (
	"strings"
	"unicode/utf8"
)

// markerAnchor is the substring searched for when choosing a split point.
// It matches the start of the line written by boundaryMarker.
const markerAnchor = "\n===== FILE:"

// splitChunks divides the combined document into pieces of at most budget
// characters. Split points are chosen by preference: the last boundary
// marker within budget, else the last blank line within budget, else a hard
// cut at the budget (backed off to a rune boundary so multi-byte sequences
// stay whole). Chunks are trimmed and re-terminated with a newline; chunks
// that trim to nothing are dropped. The scan position strictly advances
// every iteration, so splitting always terminates.
func splitChunks(doc string, budget int) []string {
	if doc == "" {
		return nil
	}
	if budget <= 0 || len(doc) <= budget {
		return []string{doc}
	}

	var chunks []string
	start := 0
	for start < len(doc) {
		end := start + budget
		if end >= len(doc) {
			end = len(doc)
		} else {
			window := doc[start:end]
			split := strings.LastIndex(window, markerAnchor)
			if split <= 0 {
				split = strings.LastIndex(window, "\n\n")
			}
			if split > 0 {
				end = start + split
			} else {
				end = runeBoundary(doc, end)
				if end <= start {
					_, size := utf8.DecodeRuneInString(doc[start:])
					end = start + size
				}
			}
		}

		if chunk := strings.TrimSpace(doc[start:end]); chunk != "" {
			chunks = append(chunks, chunk+"\n")
		}
		start = end
	}
	return chunks
}

// runeBoundary backs i off to the start of the rune it falls inside.
func runeBoundary(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
