package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateDesignName validates a design name for safety and correctness.
// Design names become store keys and file names, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateDesignName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "design name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "design name too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "design name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "design name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateSpecFilename validates a spec filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateSpecFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "spec filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "spec filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "spec filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// designIDRegex matches design identifiers as issued by the library
// (UUID form, lowercase hex with hyphens).
var designIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateDesignID validates a design identifier.
func ValidateDesignID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidName, "design id cannot be empty")
	}

	if !designIDRegex.MatchString(id) {
		return New(ErrCodeInvalidName, "invalid design id: %q", id)
	}

	return nil
}
