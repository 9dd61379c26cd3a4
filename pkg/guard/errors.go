// Package guard implements the argument checks shared by every model
// constructor, and the three error kinds those checks raise.
package guard

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a validation failure.
type ErrorCode string

const (
	// ErrCodeMissingValue indicates a required argument was absent.
	ErrCodeMissingValue ErrorCode = "BB100"
	// ErrCodeBlankValue indicates a required string was empty or whitespace.
	ErrCodeBlankValue ErrorCode = "BB101"
	// ErrCodeOutOfRange indicates an argument was present but not acceptable.
	ErrCodeOutOfRange ErrorCode = "BB102"
)

// Sentinels for errors.Is matching.
var (
	ErrMissingValue = errors.New("value cannot be missing")
	ErrBlankValue   = errors.New("value cannot be empty or whitespace")
	ErrOutOfRange   = errors.New("value is out of range")
)

// MissingValueError reports a required argument that was not supplied.
type MissingValueError struct {
	Code  ErrorCode `json:"code"`
	Param string    `json:"param"`
}

// Error implements the error interface
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Param, ErrMissingValue)
}

// Is matches ErrMissingValue.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// BlankValueError reports a required string that was empty or only whitespace.
type BlankValueError struct {
	Code   ErrorCode `json:"code"`
	Param  string    `json:"param"`
	Actual string    `json:"actual"`
}

// Error implements the error interface
func (e *BlankValueError) Error() string {
	return fmt.Sprintf("%s: %s: %v (actual %q)", e.Code, e.Param, ErrBlankValue, e.Actual)
}

// Is matches ErrBlankValue.
func (e *BlankValueError) Is(target error) bool {
	return target == ErrBlankValue
}

// OutOfRangeError reports an argument whose value is not allowed, such as a
// nil identifier or an empty generic parameter list.
type OutOfRangeError struct {
	Code    ErrorCode `json:"code"`
	Param   string    `json:"param"`
	Actual  any       `json:"actual,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Param, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v (actual %v)", e.Code, e.Param, ErrOutOfRange, e.Actual)
}

// Is matches ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Missing creates a MissingValueError for param.
func Missing(param string) error {
	return &MissingValueError{Code: ErrCodeMissingValue, Param: param}
}

// Blank creates a BlankValueError for param carrying the offending value.
func Blank(param, actual string) error {
	return &BlankValueError{Code: ErrCodeBlankValue, Param: param, Actual: actual}
}

// OutOfRange creates an OutOfRangeError. message may be empty.
func OutOfRange(param string, actual any, message string) error {
	return &OutOfRangeError{Code: ErrCodeOutOfRange, Param: param, Actual: actual, Message: message}
}

// ParamOf returns the parameter name carried by any guard error, or "" when
// err did not come from this package.
func ParamOf(err error) string {
	var missing *MissingValueError
	if errors.As(err, &missing) {
		return missing.Param
	}
	var blank *BlankValueError
	if errors.As(err, &blank) {
		return blank.Param
	}
	var rng *OutOfRangeError
	if errors.As(err, &rng) {
		return rng.Param
	}
	return ""
}
