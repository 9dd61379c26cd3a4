package guard

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// IsBlank reports whether s is empty or made only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// NotBlank fails with a BlankValueError when value is empty or whitespace.
// The value itself is never trimmed or altered.
func NotBlank(param, value string) error {
	if IsBlank(value) {
		return Blank(param, value)
	}
	return nil
}

// RequiredString checks a string that may be absent. A nil value is a
// MissingValueError, a blank one a BlankValueError.
func RequiredString(param string, value *string) (string, error) {
	if value == nil {
		return "", Missing(param)
	}
	if err := NotBlank(param, *value); err != nil {
		return "", err
	}
	return *value, nil
}

// NotNil fails with a MissingValueError when isNil is true.
//
// Callers pass the nil check themselves. A plain comparison against nil
// misses a nil pointer held in an interface, so callers taking interface
// values must check for that case before calling.
func NotNil(param string, isNil bool) error {
	if isNil {
		return Missing(param)
	}
	return nil
}

// NotEmptyID fails with an OutOfRangeError when id is the all-zero UUID.
func NotEmptyID(param string, id uuid.UUID) error {
	if id == uuid.Nil {
		return OutOfRange(param, id, "")
	}
	return nil
}

// First returns the first non-nil error. Checks are evaluated eagerly by the
// caller, so use it only for checks without side effects.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
