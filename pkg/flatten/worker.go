package flatten

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// processFiles renders every collected file concurrently, bounded by
// args.Workers, while preserving the collection order in the result. Files
// that fail to read or normalize to nothing are dropped; per-file scans
// share no state, so this is safe to parallelize.
func processFiles(files []string, root string, args *Arguments, logger *zap.Logger) []FileBlock {
	workers := args.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Debug("Processing files", zap.Int("count", len(files)), zap.Int("workers", workers))

	results := make([]*FileBlock, len(files))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			block, ok, err := processFile(path, root, args)
			if err != nil {
				logger.Warn("Skipping unreadable file", zap.String("file", path), zap.Error(err))
				return nil
			}
			if !ok {
				logger.Debug("Omitting file with no content", zap.String("file", path))
				return nil
			}
			results[i] = &block
			return nil
		})
	}
	// Workers never return errors; failures degrade to skipped files.
	_ = g.Wait()

	blocks := make([]FileBlock, 0, len(files))
	for _, b := range results {
		if b != nil {
			blocks = append(blocks, *b)
		}
	}
	return blocks
}
