package utils

import (
	"strings"
)

// RootMatcher reports whether a single path segment names a project root.
type RootMatcher func(segment string) bool

const (
	projectRootNameLength = 7
	projectRootSeparator  = 3
)

// IsProjectRootName matches the "XXX_YYY" convention: exactly seven
// characters with an underscore at index 3.
//
//   - "ABC_123" → true
//   - "AB_1234" → false
//   - "ABCDEFG" → false
//
// Any folder that happens to fit the shape qualifies; see DESIGN.md.
func IsProjectRootName(segment string) bool {
	return len(segment) == projectRootNameLength && segment[projectRootSeparator] == '_'
}

// ProjectDirName builds the project root folder name from artist and project refs.
// "ABC", "XYZ" → "ABC_XYZ"
func ProjectDirName(artistRef, projectRef string) string {
	return artistRef + "_" + projectRef
}

// FindProjectRoot walks the ancestors of path outward, starting at its
// parent, and returns the nearest one whose final segment satisfies match.
func FindProjectRoot(path string, match RootMatcher) (string, bool) {
	if match == nil {
		match = IsProjectRootName
	}

	current := ParentPath(path)
	for current != "" && current != "/" {
		if match(ExtractName(current)) {
			return current, true
		}
		next := ParentPath(current)
		if next == current {
			break
		}
		current = next
	}

	return "", false
}

// IsWithin reports whether path equals dir or lies below it.
func IsWithin(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, "/")+"/")
}
