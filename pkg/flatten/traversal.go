package flatten

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adam-wheater/source-flattener/pkg/ignore"

	"go.uber.org/zap"
)

// collectFiles walks the root and returns the sorted candidate files after
// extension-inclusion, directory-exclusion, ignore-pattern, size, and
// binary filtering. Paths that cannot be accessed are logged and skipped.
func collectFiles(root string, args *Arguments, matcher *ignore.Matcher, logger *zap.Logger) ([]string, error) {
	exts := make(map[string]bool, len(args.Extensions))
	for _, e := range args.Extensions {
		exts[strings.ToLower(e)] = true
	}
	excluded := make(map[string]bool, len(args.ExcludeDirs))
	for _, d := range args.ExcludeDirs {
		excluded[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != root && (excluded[d.Name()] || matcher.Matches(relPath)) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !exts[ext] {
			return nil
		}
		if matcher.Matches(relPath) {
			logger.Debug("Skipping ignored file", zap.String("file", path))
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to stat file", zap.String("file", path), zap.Error(infoErr))
			return nil
		}
		if args.MaxFileSizeKB > 0 && info.Size() > int64(args.MaxFileSizeKB)*1024 {
			logger.Debug("Skipping file over size limit",
				zap.String("file", path),
				zap.Int64("sizeBytes", info.Size()),
				zap.Int("maxSizeKB", args.MaxFileSizeKB))
			return nil
		}

		if binaryExtensions[ext] {
			logger.Debug("Skipping file with binary extension", zap.String("file", path))
			return nil
		}
		isBinary, binErr := isBinaryFile(path)
		if binErr != nil {
			logger.Warn("Failed to check if file is binary", zap.String("file", path), zap.Error(binErr))
			return nil
		}
		if isBinary {
			logger.Debug("Skipping binary file", zap.String("file", path))
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
