package errors

import (
	"strings"
	"unicode"
)

// MaxIDLength bounds element identifiers accepted from documents and requests.
const MaxIDLength = 256

// ValidateID validates an element identifier coming from a layout document
// or an HTTP request.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No whitespace (identifiers are used as SVG and DOT node ids)
//   - Maximum length of MaxIDLength characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "element id cannot be empty")
	}

	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidID, "element id too long (max %d characters)", MaxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "element id contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidID, "element id %q contains whitespace", id)
		}
	}

	if strings.ContainsAny(id, `"<>&`) {
		return New(ErrCodeInvalidID, "element id %q contains markup characters", id)
	}

	return nil
}

// ValidateSize validates a content size in pixels.
// Zero is allowed (a collapsed surface); negative sizes and sizes beyond
// maxSize are rejected.
func ValidateSize(name string, v, maxSize int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %d)", name, v)
	}
	if maxSize > 0 && v > maxSize {
		return New(ErrCodeInvalidInput, "%s too large (max %d, got %d)", name, maxSize, v)
	}
	return nil
}

// ValidateEnum checks that value is one of allowed (case-insensitive).
// Empty values are accepted so callers can apply their own default.
func ValidateEnum(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return New(ErrCodeInvalidDocument, "invalid %s %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
