package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adam-wheater/source-flattener/pkg/ignore"

	"go.uber.org/zap"
)

// Run executes the flatten pipeline: validate the root, load ignore
// patterns, collect candidate files, process them concurrently, assemble
// the combined document with boundary markers, split it into chunks, and
// write the outputs. A nonexistent root is the only configuration error;
// everything file-level degrades to a logged skip.
func Run(args *Arguments, logger *zap.Logger) error {
	startTime := time.Now()

	root, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}
	info, statErr := os.Stat(root)
	if statErr != nil {
		return fmt.Errorf("root does not exist: %s", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", root)
	}
	logger.Info("Starting flatten", zap.String("root", root))

	matcher, err := ignore.FromFiles(filepath.Join(root, ignoreFileName), args.GlobalIgnoreFile)
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	files, err := collectFiles(root, args, matcher, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	logger.Debug("Collected candidate files", zap.Int("count", len(files)))

	blocks := processFiles(files, root, args, logger)
	combined := assemble(blocks)
	if combined == "" {
		logger.Warn("No content matched the filters. Nothing written.")
		return nil
	}

	chunks := splitChunks(combined, args.ChunkChars)
	written, err := writeChunks(args.OutDir, args.Prefix, chunks, logger)
	if err != nil {
		return err
	}

	if args.TreeFile != "" {
		if err := writeTree(root, args, matcher, logger); err != nil {
			logger.Warn("Failed to write tree listing", zap.Error(err))
		}
	}

	logger.Info("Flatten complete",
		zap.Int("files", len(blocks)),
		zap.Int("chunks", len(written)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// assemble concatenates the rendered file blocks into the combined document,
// trimmed to a single trailing newline.
func assemble(blocks []FileBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(blk.Content)
	}
	return strings.TrimSpace(b.String()) + "\n"
}

// writeTree renders the directory tree listing and writes it to
// args.TreeFile.
func writeTree(root string, args *Arguments, matcher *ignore.Matcher, logger *zap.Logger) error {
	tree, err := renderTree(root, args, matcher, logger)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(args.TreeFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create tree output directory: %w", err)
		}
	}
	if err := os.WriteFile(args.TreeFile, []byte(tree), 0o644); err != nil {
		return fmt.Errorf("failed to write tree file: %w", err)
	}
	logger.Info("Wrote tree listing", zap.String("file", args.TreeFile))
	return nil
}
