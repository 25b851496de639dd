package flatten

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPartName(t *testing.T) {
	assert.Equal(t, "output_part001.txt", partName("output", 1, 5))
	assert.Equal(t, "output_part042.txt", partName("output", 42, 999))
	assert.Equal(t, "dump_part0007.txt", partName("dump", 7, 1500))
}

func TestWriteChunksSingle(t *testing.T) {
	dir := t.TempDir()

	paths, err := writeChunks(dir, "combined", []string{"only chunk\n"}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "combined.txt")}, paths)

	content, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "only chunk\n", string(content))
}

func TestWriteChunksMultiple(t *testing.T) {
	dir := t.TempDir()

	chunks := []string{"one\n", "two\n", "three\n"}
	paths, err := writeChunks(dir, "combined", chunks, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, want := range []string{"combined_part001.txt", "combined_part002.txt", "combined_part003.txt"} {
		assert.Equal(t, filepath.Join(dir, want), paths[i])
		content, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, chunks[i], string(content))
	}
}

func TestWriteChunksCreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := writeChunks(dir, "combined", []string{"x\n"}, zap.NewNop())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "combined.txt"))
}
