package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSiteNameLength bounds the site name written into web manifests.
const MaxSiteNameLength = 128

// ValidateDimension rejects zero or negative sizes. The label names the
// offending parameter in the message (e.g. "width", "icon size").
func ValidateDimension(label string, n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %d", label, n)
	}
	return nil
}

// ValidateSiteName validates the human-readable site name embedded in a
// favicon package.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - Valid UTF-8
//   - Maximum length of MaxSiteNameLength runes
func ValidateSiteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "site name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "site name must be valid UTF-8")
	}
	if utf8.RuneCountInString(name) > MaxSiteNameLength {
		return New(ErrCodeInvalidInput, "site name too long (max %d characters)", MaxSiteNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "site name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
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
