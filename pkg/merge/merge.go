// Package merge collects a project's source files into one Markdown document.
package merge

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run discovers the source files under opts.Root and writes the merged
// document to opts.Output. Any error aborts the run; the output file may then
// hold a partial document.
func Run(opts Options, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Extensions == nil {
		opts.Extensions = DefaultExtensions()
	}
	if opts.IgnoreDirs == nil {
		opts.IgnoreDirs = DefaultIgnoreDirs()
	}
	if len(opts.Decoders) == 0 {
		opts.Decoders = DefaultDecoders()
	}

	startTime := time.Now()
	logger.Info("Starting merge", zap.String("root", opts.Root))

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	if opts.WorkDir == "" {
		opts.WorkDir = root
	}
	output := opts.Output
	if output == "" {
		output = filepath.Join(root, OutputFileName)
	}
	if output, err = filepath.Abs(output); err != nil {
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	files, err := DiscoverFiles(root, opts.Extensions, opts.IgnoreDirs, logger)
	if err != nil {
		logger.Error("Failed to discover files", zap.Error(err))
		return Result{}, fmt.Errorf("failed to discover files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No source files found", zap.String("root", root))
	}

	n, err := WriteMergedFile(output, files, opts, logger)
	if err != nil {
		logger.Error("Failed to write merged file", zap.String("outputFile", output), zap.Error(err))
		return Result{Files: n, Output: output}, fmt.Errorf("failed to write merged file: %w", err)
	}

	logger.Info("Merge completed",
		zap.String("outputFile", output),
		zap.Int("totalFiles", n),
		zap.Duration("elapsed", time.Since(startTime)))
	return Result{Files: n, Output: output}, nil
}
