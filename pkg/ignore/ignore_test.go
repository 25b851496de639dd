package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherDirectoryPattern(t *testing.T) {
	m := New("node_modules/")

	assert.True(t, m.Matches("node_modules"))
	assert.True(t, m.Matches("node_modules/left-pad/index.js"))
	assert.True(t, m.Matches("src/node_modules/x.js"))
	assert.False(t, m.Matches("mynode_modules"))
	assert.False(t, m.Matches("src/main.go"))
}

func TestMatcherWildcards(t *testing.T) {
	m := New("*.log")

	assert.True(t, m.Matches("a.log"))
	assert.True(t, m.Matches("logs/b.log"))
	assert.False(t, m.Matches("a.logx"))

	q := New("f?o.txt")
	assert.True(t, q.Matches("foo.txt"))
	assert.False(t, q.Matches("f/o.txt"))
}

func TestMatcherNegation(t *testing.T) {
	m := New("*.log", "!keep.log")

	assert.True(t, m.Matches("debug.log"))
	assert.False(t, m.Matches("keep.log"))
}

func TestMatcherRootedPattern(t *testing.T) {
	m := New("/build")

	assert.True(t, m.Matches("build"))
	assert.True(t, m.Matches("build/out.o"))
	assert.False(t, m.Matches("src/build"))
}

func TestMatcherDoubleStar(t *testing.T) {
	m := New("**/dist")
	assert.True(t, m.Matches("dist"))
	assert.True(t, m.Matches("a/b/dist"))
	assert.True(t, m.Matches("a/b/dist/bundle.js"))

	mid := New("a/**/b")
	assert.True(t, mid.Matches("a/b"))
	assert.True(t, mid.Matches("a/x/y/b"))
	assert.False(t, mid.Matches("a/x"))

	tail := New("doc/**")
	assert.True(t, tail.Matches("doc/guide.md"))
	assert.True(t, tail.Matches("doc"))
}

func TestMatcherSkipsCommentsAndBlanks(t *testing.T) {
	m := New("", "# comment", "   ", "*.tmp")

	assert.Len(t, m.patterns, 1)
	assert.True(t, m.Matches("x.tmp"))
}

func TestFromFiles(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".srcflatignore")
	require.NoError(t, os.WriteFile(local, []byte("*.bak\n# note\nsecret/\n"), 0o644))

	m, err := FromFiles(local, filepath.Join(dir, "missing-global"), "")
	require.NoError(t, err)

	assert.True(t, m.Matches("old.bak"))
	assert.True(t, m.Matches("secret/key.pem"))
	assert.False(t, m.Matches("main.go"))
}
