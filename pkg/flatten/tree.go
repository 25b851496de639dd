package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adam-wheater/source-flattener/pkg/ignore"

	"go.uber.org/zap"
)

// renderTree builds a box-drawing listing of the directories and files under
// root that survive the exclusion rules.
func renderTree(root string, args *Arguments, matcher *ignore.Matcher, logger *zap.Logger) (string, error) {
	excluded := make(map[string]bool, len(args.ExcludeDirs))
	for _, d := range args.ExcludeDirs {
		excluded[d] = true
	}

	var b strings.Builder
	b.WriteString(filepath.ToSlash(root) + "/\n")

	subtree, err := renderSubtree(root, root, excluded, matcher, "", logger)
	if err != nil {
		return "", err
	}
	if subtree != "" {
		b.WriteString(subtree)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// renderSubtree builds the tree structure recursively, directories first,
// alphabetically within each group.
func renderSubtree(dir, root string, excluded map[string]bool, matcher *ignore.Matcher, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var out []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		entryPath := filepath.Join(dir, entry.Name())
		relPath, relErr := filepath.Rel(root, entryPath)
		if relErr != nil {
			relPath = entryPath
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if excluded[entry.Name()] || matcher.Matches(relPath) {
				continue
			}
			out = append(out, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree, subErr := renderSubtree(entryPath, root, excluded, matcher, prefix+extension, logger)
			if subErr != nil {
				logger.Warn("Failed to render subtree", zap.String("directory", entryPath), zap.Error(subErr))
				continue
			}
			if subtree != "" {
				out = append(out, subtree)
			}
			continue
		}

		if !matcher.Matches(relPath) {
			out = append(out, prefix+connector+entry.Name())
		}
	}
	return strings.Join(out, "\n"), nil
}
