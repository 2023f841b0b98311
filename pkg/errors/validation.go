package errors

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Disk count bounds accepted at the boundary. Larger counts are rejected
// before any move sequence is built.
const (
	MinDisks = 1
	MaxDisks = 6
)

// DiskCountMessage is the user-facing message for a rejected disk count.
var DiskCountMessage = "please choose a disk count from " + strconv.Itoa(MinDisks) + " to " + strconv.Itoa(MaxDisks)

// ParseDiskCount parses and validates a disk count typed by the user.
// Surrounding whitespace is ignored. Missing, non-numeric and out-of-range
// input all fail with [ErrCodeInvalidInput] and the same user message.
func ParseDiskCount(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "%s", DiskCountMessage)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "%s", DiskCountMessage)
	}

	if err := ValidateDiskCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateDiskCount checks that n lies within [MinDisks, MaxDisks].
func ValidateDiskCount(n int) error {
	if n < MinDisks || n > MaxDisks {
		return New(ErrCodeInvalidInput, "%s", DiskCountMessage)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", format, strings.Join(allowed, ", "))
}

// ValidateOutputPath validates a user supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	return nil
}
