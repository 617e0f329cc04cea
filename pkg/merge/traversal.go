// File: pkg/merge/traversal.go
package merge

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// DiscoverFiles walks root and returns every regular file whose suffix is in
// exts and whose path has no segment matched by ignore, sorted by path string.
// Any traversal error aborts the walk.
func DiscoverFiles(root string, exts ExtensionSet, ignore PathMatcher, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Debug("Starting file discovery", zap.String("root", absRoot))

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during discovery", zap.String("path", path), zap.Error(err))
			return err
		}

		if d.IsDir() {
			if ignore.MatchesPath(path) {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !exts.Matches(path) || ignore.MatchesPath(path) {
			return nil
		}

		regular, err := isRegularEntry(path, d)
		if err != nil {
			return err
		}
		if !regular {
			logger.Debug("Skipping non-regular file", zap.String("filePath", path))
			return nil
		}

		files = append(files, path)
		logger.Debug("Discovered source file", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	sort.Strings(files)
	logger.Debug("Completed file discovery", zap.Int("files", len(files)))
	return files, nil
}

// isRegularEntry reports whether the entry is a regular file, following
// symlinks. A dangling symlink is not a regular file.
func isRegularEntry(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
