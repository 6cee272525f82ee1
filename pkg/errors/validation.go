package errors

import (
	"strings"
	"unicode"
)

// ValidateInputPath validates a tiling file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// "-" is accepted and means standard input.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
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

// ValidateLength checks that a pattern length parameter lies in [lo, hi].
// Candidate enumeration grows factorially, so callers pick a small hi.
func ValidateLength(name string, n, lo, hi int) error {
	if n < lo || n > hi {
		return New(ErrCodeInvalidInput, "%s must be between %d and %d, got %d", name, lo, hi, n)
	}
	return nil
}

// ValidateName rejects empty or whitespace-padded identifiers such as
// strategy and backend names.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "%s cannot contain leading or trailing spaces: %q", kind, name)
	}
	return nil
}
