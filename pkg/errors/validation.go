package errors

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// maxPathLength bounds edge-list paths accepted from the command line.
const maxPathLength = 4096

// ValidatePath validates an edge-list path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute and relative paths are both accepted; "-" means stdin and is valid.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ParseVertexID parses a vertex identifier as a signed 64-bit integer.
// Identifiers outside the int64 range are rejected rather than truncated.
func ParseVertexID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "vertex id cannot be empty")
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, New(ErrCodeInvalidInput, "vertex id %s is out of range for a 64-bit integer", s)
		}
		return 0, New(ErrCodeInvalidInput, "vertex id %q is not an integer", s)
	}
	return id, nil
}
