package errors

import (
	"strings"
	"unicode"
)

// maxDims bounds tensor rank. Fully-connected parameters never exceed a few.
const maxDims = 8

// ValidateShape checks that a tensor shape is usable and agrees with the
// number of values it is declared to hold.
//
// Validation rules:
//   - At least one dimension, at most 8
//   - Every dimension is positive
//   - The product of all dimensions equals n
func ValidateShape(name string, shape []int, n int) error {
	if len(shape) == 0 {
		return New(ErrCodeInvalidModel, "parameter %q has no shape", name)
	}
	if len(shape) > maxDims {
		return New(ErrCodeInvalidModel, "parameter %q has too many dimensions (%d, max %d)", name, len(shape), maxDims)
	}

	size := 1
	for i, d := range shape {
		if d <= 0 {
			return New(ErrCodeInvalidModel, "parameter %q has non-positive dimension %d at axis %d", name, d, i)
		}
		size *= d
	}
	if size != n {
		return New(ErrCodeInvalidModel, "parameter %q declares shape %v (%d values) but holds %d", name, shape, size, n)
	}
	return nil
}

// ValidateName validates a dotted parameter or module path.
// The empty string is the root module and is accepted.
//
// Validation rules:
//   - No control characters
//   - No whitespace
//   - No empty segments ("a..b", ".a", "a.")
func ValidateName(name string) error {
	if name == "" {
		return nil
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidModel, "name %q contains invalid characters", name)
		}
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return New(ErrCodeInvalidModel, "name %q contains an empty path segment", name)
		}
	}
	return nil
}
