// File: pkg/merge/config.go
package merge

import "path/filepath"

// OutputFileName is the document written into the scan root.
const OutputFileName = "source_code_1.md"

// Preamble lines written before the first fragment.
const (
	DocumentTitle       = "# Project Source Code"
	DocumentDescription = "This document contains all source code files from the project."
)

// Options holds the configuration for a single merge run.
type Options struct {
	Root       string       // Directory scanned for source files.
	WorkDir    string       // Directory fragment headers are made relative to.
	Output     string       // Destination path for the merged document.
	Extensions ExtensionSet // Suffixes that qualify a file for inclusion.
	IgnoreDirs IgnoreSet    // Directory names excluded at any depth.
	Decoders   []Decoder    // Decoders tried in order when loading content.
	FenceLang  bool         // If true, the opening fence carries the file's language tag.
}

// DefaultOptions returns the options for a run rooted at dir, with dir also
// serving as the working directory.
func DefaultOptions(dir string) Options {
	return Options{
		Root:       dir,
		WorkDir:    dir,
		Output:     filepath.Join(dir, OutputFileName),
		Extensions: DefaultExtensions(),
		IgnoreDirs: DefaultIgnoreDirs(),
		Decoders:   DefaultDecoders(),
	}
}

// Result summarizes a completed run.
type Result struct {
	Files  int    // Number of fragments written.
	Output string // Path of the merged document.
}
