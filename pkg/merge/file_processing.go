package merge

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrOutsideWorkDir is returned when a file cannot be shown relative to the
// working directory.
var ErrOutsideWorkDir = errors.New("path is not inside the working directory")

const sectionRule = "------"

// Fragment is the rendered section for one source file.
type Fragment struct {
	Path     string // Header path, relative to the working directory.
	Content  string // File text inserted verbatim.
	Language string // Opening fence tag; empty for a bare fence.
}

// RelativePath expresses filePath relative to workDir. Paths that would need
// ".." to reach are rejected with ErrOutsideWorkDir.
func RelativePath(workDir, filePath string) (string, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	absFile, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	rel, err := filepath.Rel(absWorkDir, absFile)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideWorkDir, filePath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is not under %s", ErrOutsideWorkDir, filePath, absWorkDir)
	}
	return rel, nil
}

// WriteTo renders the fragment to w.
func (f Fragment) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "## %s\n\n%s\n\n```%s\n%s\n```\n\n%s\n\n",
		f.Path, sectionRule, f.Language, f.Content, sectionRule)
	return int64(n), err
}

// String returns the rendered fragment.
func (f Fragment) String() string {
	var b strings.Builder
	_, _ = f.WriteTo(&b)
	return b.String()
}

// HasEmbeddedFence reports whether the content holds a fence sequence that
// will break the surrounding code block.
func (f Fragment) HasEmbeddedFence() bool {
	return strings.Contains(f.Content, "```")
}
