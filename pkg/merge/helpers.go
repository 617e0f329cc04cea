// File: pkg/merge/helpers.go
package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// WritePreamble writes the document title and description.
func WritePreamble(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n\n%s\n\n", DocumentTitle, DocumentDescription)
	return err
}

// WriteMergedFile creates or truncates outputPath and streams the preamble
// followed by one fragment per file, loading each file only when its turn
// comes. It returns the number of fragments written.
func WriteMergedFile(outputPath string, files []string, opts Options, logger *zap.Logger) (int, error) {
	logger.Debug("Writing merged content to output file", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if err := WritePreamble(writer); err != nil {
		return 0, fmt.Errorf("failed to write preamble: %w", err)
	}

	written := 0
	for _, file := range files {
		frag, err := buildFragment(file, opts, logger)
		if err != nil {
			return written, err
		}
		if frag.HasEmbeddedFence() {
			logger.Warn("File contains a code fence; merged markdown may be malformed",
				zap.String("filePath", frag.Path))
		}
		if _, err := frag.WriteTo(writer); err != nil {
			logger.Error("Failed to write fragment", zap.String("file", outputPath), zap.String("contentPath", frag.Path), zap.Error(err))
			return written, fmt.Errorf("failed to write content: %w", err)
		}
		written++
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return written, fmt.Errorf("failed to flush output: %w", err)
	}
	return written, nil
}

func buildFragment(file string, opts Options, logger *zap.Logger) (Fragment, error) {
	content, err := LoadContent(file, opts.Decoders, logger)
	if err != nil {
		return Fragment{}, err
	}
	rel, err := RelativePath(opts.WorkDir, file)
	if err != nil {
		logger.Error("Failed to relativize path", zap.String("filePath", file), zap.String("workDir", opts.WorkDir), zap.Error(err))
		return Fragment{}, err
	}

	frag := Fragment{Path: rel, Content: content}
	if opts.FenceLang {
		frag.Language = LanguageTag(file)
	}
	return frag, nil
}
