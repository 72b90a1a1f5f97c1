package numeral

import (
	"errors"
	"fmt"
	"strconv"
)

// ConversionError is returned when an input cannot be converted.
//
// Conversion is deterministic, so a ConversionError for an input is returned
// on every attempt with that input; retrying never helps.
type ConversionError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the rejected value as the caller supplied it.
	Input string

	// Details contains additional context (e.g. the supported maximum).
	Details map[string]string
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeRangeExceeded indicates the value needs a magnitude tier the
	// lexicon does not define, or does not fit in a uint64.
	ErrCodeRangeExceeded ErrorCode = "RANGE_EXCEEDED"

	// ErrCodeInvalidNumber indicates a string input is not a non-negative
	// decimal integer.
	ErrCodeInvalidNumber ErrorCode = "INVALID_NUMBER"
)

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%s)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsRangeError returns true if err is a range exceeded error.
// Uses errors.As to handle wrapped errors.
func IsRangeError(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeRangeExceeded
	}
	return false
}

// IsInvalidNumber returns true if err is an invalid number error.
func IsInvalidNumber(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidNumber
	}
	return false
}

// NewRangeError creates a ConversionError for a value above max.
func NewRangeError(input string, max uint64) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeRangeExceeded,
		Message: fmt.Sprintf("value exceeds the supported maximum %d", max),
		Input:   input,
		Details: map[string]string{
			"max": strconv.FormatUint(max, 10),
		},
	}
}

// NewInvalidNumberError creates a ConversionError for unparseable input.
func NewInvalidNumberError(input, reason string) *ConversionError {
	return &ConversionError{
		Code:    ErrCodeInvalidNumber,
		Message: reason,
		Input:   input,
	}
}
