package errors

import (
	"strings"
	"unicode"
)

// ValidateWord validates a single cloud word for safety and renderability.
//
// The validation rules are intentionally conservative:
//   - No empty words
//   - No control characters
//   - Maximum length of 128 characters
//
// Weight validation is done by the words package; this only guards the text.
func ValidateWord(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}

	if len(text) > 128 {
		return New(ErrCodeInvalidInput, "word too long (max 128 characters)")
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "word contains invalid control characters")
		}
	}

	return nil
}

// ValidateFontPath validates a font file path passed on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must end in .ttf or .otf
func ValidateFontPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidFont, "font path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidFont, "font path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font path contains invalid characters")
		}
	}

	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
		return New(ErrCodeInvalidFont, "font must be a .ttf or .otf file: %q", path)
	}

	return nil
}
