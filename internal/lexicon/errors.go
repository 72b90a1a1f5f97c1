package lexicon

import (
	"errors"
	"fmt"
)

// ErrCodeInvalidLexicon marks every structural lexicon failure.
const ErrCodeInvalidLexicon = "INVALID_LEXICON"

// ValidationError describes one structural problem in a lexicon.
type ValidationError struct {
	// Script is the affected script, or empty when the problem spans scripts.
	Script string

	// Field names the offending table (e.g. "digits[3]", "magnitudes").
	Field string

	// Message is a human-readable description.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Script != "" {
		return fmt.Sprintf("%s: %s.%s: %s", ErrCodeInvalidLexicon, e.Script, e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ErrCodeInvalidLexicon, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrCodeInvalidLexicon, e.Message)
}

// IsValidationError reports whether err (or anything it wraps or joins) is a
// ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// indexPanic is raised when a lookup index is outside its table. The numeral
// package never computes such an index, so reaching this is a defect.
func indexPanic(table string, s Script, idx, max int) string {
	return fmt.Sprintf("lexicon: %s index %d out of range [0, %d] for %s", table, idx, max, s)
}
