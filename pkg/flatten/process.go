package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adam-wheater/source-flattener/pkg/normalize"
	"github.com/adam-wheater/source-flattener/pkg/strip"
)

// boundaryMarker introduces one file inside the combined document. The
// marker line doubles as the chunk splitter's preferred split anchor.
func boundaryMarker(relPath string) string {
	return fmt.Sprintf("\n\n===== FILE: %s =====\n\n", relPath)
}

// processFile reads one file and renders its block. ok is false when the
// file should be omitted because nothing remains after normalization; err
// is non-nil only for read failures.
func processFile(path, root string, args *Arguments) (FileBlock, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FileBlock{}, false, fmt.Errorf("error reading file %s: %w", path, err)
	}
	// Invalid UTF-8 sequences are dropped rather than failing the file.
	text := strings.ToValidUTF8(string(raw), "")

	relPath, relErr := filepath.Rel(root, path)
	if relErr != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	processed := processContent(text, filepath.Ext(path), args)
	if processed == "" {
		return FileBlock{}, false, nil
	}
	return FileBlock{
		RelPath: relPath,
		Content: boundaryMarker(relPath) + processed,
	}, true, nil
}

// processContent dispatches the extension to the matching comment scanner
// (when stripping is enabled), then always normalizes whitespace. Comments
// go first so that whitespace they leave behind is cleaned up after.
func processContent(text, ext string, args *Arguments) string {
	if args.StripComments {
		text = stripForExtension(text, ext, args.StripPyDocstrings)
	}
	return normalize.Text(text, args.TabSpaces, args.CollapseBlankTo)
}

// stripForExtension maps a file extension to its comment-syntax class.
// Unmapped extensions pass through unchanged.
func stripForExtension(text, ext string, stripDocstrings bool) string {
	switch strings.ToLower(ext) {
	case ".py":
		return strip.Python(text, stripDocstrings)
	case ".html", ".htm", ".md":
		return strip.HTML(text)
	case ".sql":
		return strip.SQL(text)
	case ".sh", ".bash", ".zsh", ".ps1":
		return strip.HashLines(text)
	case ".js", ".ts", ".tsx", ".jsx", ".java", ".c", ".cpp", ".h", ".hpp",
		".cs", ".css", ".php", ".rs", ".go":
		s := strip.CLike(text)
		// PHP also allows # line comments.
		if strings.EqualFold(ext, ".php") {
			s = strip.HashLines(s)
		}
		return s
	}
	return text
}
