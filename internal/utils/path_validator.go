package utils

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	MaxPathLength = 4096
)

// windowsDrives enables bare-letter drive detection ("C/Projects" → "C:/Projects").
// A segment ending in ':' is treated as a drive on every platform.
var windowsDrives = runtime.GOOS == "windows"

// Canonicalize converts any user-supplied or OS-native path into the
// canonical slash form used across the service.
//
// Examples:
//   - `C:\\Projects\\maya\\maya\\scenes\\` → "C:/Projects/maya/scenes"
//   - "/mnt//jobs/ABC_123/" → "/mnt/jobs/ABC_123"
//   - "" → ""
//
// Applying it twice yields the same result.
func Canonicalize(raw string) string {
	segments := splitSegments(raw)
	if len(segments) == 0 {
		return ""
	}

	drive, rest, ok := splitDrive(segments, windowsDrives)
	kept := collapseDuplicates(rest)

	if ok {
		if len(kept) == 0 {
			return drive
		}
		return drive + "/" + strings.Join(kept, "/")
	}
	return "/" + strings.Join(kept, "/")
}

// CleanPath collapses duplicate consecutive segments and repairs drive
// colons without forcing a leading slash. Rooted input stays rooted,
// relative input stays relative. Used for paths that already name an
// existing filesystem entry.
func CleanPath(raw string) string {
	normalized := strings.ReplaceAll(raw, "\\", "/")
	segments := splitSegments(normalized)
	if len(segments) == 0 {
		return ""
	}

	drive, rest, ok := splitDrive(segments, false)
	kept := collapseDuplicates(rest)

	switch {
	case ok && len(kept) == 0:
		return drive
	case ok:
		return drive + "/" + strings.Join(kept, "/")
	case strings.HasPrefix(normalized, "/"):
		return "/" + strings.Join(kept, "/")
	default:
		return strings.Join(kept, "/")
	}
}

// ExtractName returns the final segment of a path ("" for an empty path).
func ExtractName(path string) string {
	segments := splitSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// ParentPath returns the canonical-form parent of a cleaned path, or ""
// when the path has a single segment.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	switch {
	case idx < 0:
		return ""
	case idx == 0:
		return "/"
	default:
		return path[:idx]
	}
}

// JoinPath appends name to a canonical directory path.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// ValidateFolderName validates a single folder name used for rename
func ValidateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid folder name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("folder name cannot contain path separators")
	}
	return nil
}

// ValidateRelativePath validates a template-relative path such as
// "maya/scenes/global". It must stay inside the project directory.
func ValidateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if len(path) > MaxPathLength {
		return fmt.Errorf("path exceeds maximum length of %d characters", MaxPathLength)
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	if strings.HasPrefix(normalized, "/") {
		return fmt.Errorf("path %q must be relative", path)
	}

	segments := splitSegments(normalized)
	if len(segments) > 0 && strings.HasSuffix(segments[0], ":") {
		return fmt.Errorf("path %q must be relative", path)
	}
	for _, segment := range segments {
		if segment == ".." {
			return fmt.Errorf("path %q cannot contain '..' segments", path)
		}
	}

	return nil
}

func splitSegments(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// splitDrive detects a leading drive segment and returns it as "X:".
func splitDrive(segments []string, bareLetters bool) (string, []string, bool) {
	first := segments[0]
	if strings.HasSuffix(first, ":") {
		drive := strings.TrimRight(first, ":")
		if drive == "" {
			return "", segments, false
		}
		return drive + ":", segments[1:], true
	}
	if bareLetters && len(first) == 1 && isASCIILetter(first[0]) {
		return first + ":", segments[1:], true
	}
	return "", segments, false
}

func collapseDuplicates(segments []string) []string {
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		if len(kept) > 0 && kept[len(kept)-1] == segment {
			continue
		}
		kept = append(kept, segment)
	}
	return kept
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
