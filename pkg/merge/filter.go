// File: pkg/merge/filter.go
package merge

import (
	"path/filepath"
	"strings"
)

// PathMatcher reports whether a path should be left out of the merge.
type PathMatcher interface {
	MatchesPath(path string) bool
}

// IgnoreSet is a set of directory names excluded wherever they appear in a path.
type IgnoreSet map[string]struct{}

// DefaultIgnoreDirs returns the fixed set of excluded directory names.
func DefaultIgnoreDirs() IgnoreSet {
	return NewIgnoreSet(".git", "node_modules", "dist")
}

// NewIgnoreSet builds an IgnoreSet from directory names.
func NewIgnoreSet(names ...string) IgnoreSet {
	s := make(IgnoreSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is an ignored directory name.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// MatchesPath reports whether any segment of path is in the set.
func (s IgnoreSet) MatchesPath(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if s.Contains(seg) {
			return true
		}
	}
	return false
}

// ExtensionSet is a set of lowercase file suffixes, dot included.
type ExtensionSet map[string]struct{}

// DefaultExtensions returns the fixed set of recognized source suffixes.
func DefaultExtensions() ExtensionSet {
	return NewExtensionSet(".tsx", ".html", ".js", ".ts", ".cjs")
}

// NewExtensionSet builds an ExtensionSet; suffixes are lowercased.
func NewExtensionSet(exts ...string) ExtensionSet {
	s := make(ExtensionSet, len(exts))
	for _, e := range exts {
		s[strings.ToLower(e)] = struct{}{}
	}
	return s
}

// Matches reports whether the lowercased suffix of path is in the set.
func (s ExtensionSet) Matches(path string) bool {
	_, ok := s[strings.ToLower(fileSuffix(path))]
	return ok
}

// fileSuffix returns the final dotted suffix of the base name. A leading dot
// alone does not start a suffix, so ".ts" has none.
func fileSuffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// LanguageTag returns the suffix of path without its dot, e.g. "tsx".
func LanguageTag(path string) string {
	return strings.TrimPrefix(fileSuffix(path), ".")
}
