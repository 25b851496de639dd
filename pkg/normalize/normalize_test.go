package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tabWidth int
		maxBlank int
		want     string
	}{
		{
			name:     "bom and line endings canonicalized",
			input:    "\uFEFFa\r\nb\rc",
			tabWidth: 2,
			maxBlank: 1,
			want:     "a\nb\nc\n",
		},
		{
			name:     "tabs expand to column stops",
			input:    "a\tb\nc",
			tabWidth: 4,
			maxBlank: 1,
			want:     "a   b\nc\n",
		},
		{
			name:     "tab mid line pads to next stop",
			input:    "ab\tc\nd",
			tabWidth: 4,
			maxBlank: 1,
			want:     "ab  c\nd\n",
		},
		{
			name:     "trailing whitespace trimmed per line",
			input:    "a   \nb\t\nc",
			tabWidth: 2,
			maxBlank: 1,
			want:     "a\nb\nc\n",
		},
		{
			name:     "blank runs collapse to the maximum",
			input:    "a\n\n\n\n\nb",
			tabWidth: 2,
			maxBlank: 1,
			want:     "a\n\nb\n",
		},
		{
			name:     "blank run limit of two",
			input:    "a\n\n\n\n\nb",
			tabWidth: 2,
			maxBlank: 2,
			want:     "a\n\n\nb\n",
		},
		{
			name:     "leading and trailing blank lines trimmed",
			input:    "\n\n\na\n\n\n",
			tabWidth: 2,
			maxBlank: 1,
			want:     "a\n",
		},
		{
			name:     "all blank input yields empty omission signal",
			input:    "  \n\t\n\n",
			tabWidth: 2,
			maxBlank: 1,
			want:     "",
		},
		{
			name:     "empty input yields empty",
			input:    "",
			tabWidth: 2,
			maxBlank: 1,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input, tt.tabWidth, tt.maxBlank))
		})
	}
}

func TestTextIsFixedPoint(t *testing.T) {
	inputs := []string{
		"\uFEFFpackage main\r\n\r\n\r\nfunc main() {\n\tx := 1\t\n}\n",
		"a\n\n\n\nb\n",
		"   \n\n",
		"hello",
	}
	for _, in := range inputs {
		once := Text(in, 2, 1)
		assert.Equal(t, once, Text(once, 2, 1), "normalizing a normalized document must not change it")
	}
}
