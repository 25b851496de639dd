// Package ignore implements gitignore-style path matching for the file
// walker.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// pattern is one compiled ignore rule.
type pattern struct {
	re     *regexp.Regexp
	negate bool
	line   string
}

// Matcher holds an ordered list of compiled ignore patterns. Later patterns
// override earlier ones and a leading '!' negates a match, following
// gitignore semantics.
type Matcher struct {
	patterns []pattern
}

// New compiles the given pattern lines into a Matcher. Blank lines, comment
// lines, and lines that fail to compile are dropped.
func New(lines ...string) *Matcher {
	m := &Matcher{}
	m.Add(lines...)
	return m
}

// FromFiles builds a Matcher from the given ignore files, in order. Empty
// paths and missing files are skipped; any other read error is returned.
func FromFiles(paths ...string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		content, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		m.Add(strings.Split(string(content), "\n")...)
	}
	return m, nil
}

// Add compiles more pattern lines onto the matcher.
func (m *Matcher) Add(lines ...string) {
	for _, line := range lines {
		if p := compileLine(line); p != nil {
			m.patterns = append(m.patterns, *p)
		}
	}
}

// Matches reports whether the slash-separated relative path is ignored.
func (m *Matcher) Matches(relPath string) bool {
	p := filepath.ToSlash(relPath)
	matched := false
	for _, pat := range m.patterns {
		if pat.re.MatchString(p) {
			matched = !pat.negate
		}
	}
	return matched
}

// compileLine turns one ignore-file line into a pattern, or nil when the
// line carries no rule.
func compileLine(line string) *pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	re, err := regexp.Compile(translate(trimmed))
	if err != nil {
		return nil
	}
	return &pattern{re: re, negate: negate, line: line}
}

// doubleStar stands in for '**' while single stars are rewritten, so the
// fragments the rewrite introduces are not themselves rewritten.
const doubleStar = "\x00"

// translate converts a gitignore-style glob into an anchored regular
// expression over slash-separated relative paths.
func translate(glob string) string {
	rooted := strings.HasPrefix(glob, "/")
	dirOnly := strings.HasSuffix(glob, "/")
	g := strings.TrimPrefix(glob, "/")
	g = strings.TrimSuffix(g, "/")

	p := escapeSpecial(g)
	p = strings.ReplaceAll(p, "**", doubleStar)
	p = strings.ReplaceAll(p, "*", `[^/]*`)
	p = strings.ReplaceAll(p, "?", `[^/]`)
	p = strings.ReplaceAll(p, "/"+doubleStar+"/", `(/|/.+/)`)
	if strings.HasPrefix(p, doubleStar+"/") {
		p = `(.*/)?` + p[len(doubleStar)+1:]
	}
	if strings.HasSuffix(p, "/"+doubleStar) {
		p = p[:len(p)-len(doubleStar)-1] + `(/.*)?`
	}
	p = strings.ReplaceAll(p, doubleStar, `.*`)

	if dirOnly {
		p += `(/.*)?$`
	} else {
		p += `(|/.*)$`
	}

	if rooted {
		return "^" + p
	}
	return "^(|.*/)" + p
}

// escapeSpecial escapes regex metacharacters except '*', '?', and '/'.
func escapeSpecial(s string) string {
	const special = `.+()|^$[]{}\`
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
