package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// writeChunks writes each chunk under outDir with the fixed naming scheme:
// a single chunk goes to <prefix>.txt, multiple chunks go to
// <prefix>_partNNN.txt with the part number zero-padded to at least three
// digits (more when the chunk count needs them). Returns the written paths
// in order.
func writeChunks(outDir, prefix string, chunks []string, logger *zap.Logger) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if len(chunks) == 1 {
		path := filepath.Join(outDir, prefix+".txt")
		if err := os.WriteFile(path, []byte(chunks[0]), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Wrote output file", zap.String("file", path))
		return []string{path}, nil
	}

	paths := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		path := filepath.Join(outDir, partName(prefix, i+1, len(chunks)))
		if err := os.WriteFile(path, []byte(chunk), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Wrote output file", zap.String("file", path), zap.Int("part", i+1))
		paths = append(paths, path)
	}
	return paths, nil
}

// partName builds the file name for part n of total chunks.
func partName(prefix string, n, total int) string {
	width := len(strconv.Itoa(total))
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("%s_part%0*d.txt", prefix, width, n)
}
