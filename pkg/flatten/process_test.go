package flatten

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripArgs() *Arguments {
	return &Arguments{
		StripComments:   true,
		TabSpaces:       2,
		CollapseBlankTo: 1,
	}
}

func TestProcessContentDispatch(t *testing.T) {
	tests := []struct {
		name  string
		ext   string
		input string
		want  string
	}{
		{
			name:  "go uses the c-like scanner",
			ext:   ".go",
			input: "x := 1 // note\ns := \"// keep\"\n",
			want:  "x := 1\ns := \"// keep\"\n",
		},
		{
			name:  "extension match is case insensitive",
			ext:   ".GO",
			input: "x := 1 // note\n",
			want:  "x := 1\n",
		},
		{
			name:  "sql scanner",
			ext:   ".sql",
			input: "SELECT 1; -- note\n",
			want:  "SELECT 1;\n",
		},
		{
			name:  "shell hash scanner",
			ext:   ".sh",
			input: "echo hi # comment\n",
			want:  "echo hi\n",
		},
		{
			name:  "markdown uses the html scanner",
			ext:   ".md",
			input: "# heading stays\n<!-- note -->\nbody\n",
			want:  "# heading stays\n\nbody\n",
		},
		{
			name:  "php gets c-like then hash stripping",
			ext:   ".php",
			input: "$x = 1; // c\n$y = 2; # h\n",
			want:  "$x = 1;\n$y = 2;\n",
		},
		{
			name:  "unmapped extension passes through to the normalizer",
			ext:   ".json",
			input: "{\"a\": 1} // not stripped\n",
			want:  "{\"a\": 1} // not stripped\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, processContent(tt.input, tt.ext, stripArgs()))
		})
	}
}

func TestProcessContentStrippingDisabled(t *testing.T) {
	args := stripArgs()
	args.StripComments = false

	got := processContent("x := 1 // kept\n", ".go", args)
	assert.Equal(t, "x := 1 // kept\n", got)
}

func TestProcessContentAlwaysNormalizes(t *testing.T) {
	args := stripArgs()
	args.StripComments = false

	got := processContent("\uFEFFa\r\n\r\n\r\n\r\nb\t\n", ".unknown", args)
	assert.Equal(t, "a\n\nb\n", got)
}

func TestProcessFile(t *testing.T) {
	root := t.TempDir()

	t.Run("renders marker plus processed content", func(t *testing.T) {
		path := filepath.Join(root, "sub", "main.go")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("package main // pkg\n"), 0o644))

		block, ok, err := processFile(path, root, stripArgs())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "sub/main.go", block.RelPath)
		assert.Equal(t, "\n\n===== FILE: sub/main.go =====\n\npackage main\n", block.Content)
	})

	t.Run("comment-only file signals omission", func(t *testing.T) {
		path := filepath.Join(root, "empty.go")
		require.NoError(t, os.WriteFile(path, []byte("// nothing else\n\n"), 0o644))

		_, ok, err := processFile(path, root, stripArgs())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid utf-8 bytes are dropped", func(t *testing.T) {
		path := filepath.Join(root, "latin1.txt")
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644))

		block, ok, err := processFile(path, root, stripArgs())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, block.Content, "caf\n")
	})

	t.Run("unreadable file returns an error", func(t *testing.T) {
		_, _, err := processFile(filepath.Join(root, "missing.go"), root, stripArgs())
		assert.Error(t, err)
	})
}
