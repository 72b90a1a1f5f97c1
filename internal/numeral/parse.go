package numeral

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var digitGrouping = strings.NewReplacer(",", "", "_", "")

// ParseNumber reads a non-negative decimal integer.
//
// Full-width digits (１２３) are folded to ASCII, surrounding space is
// trimmed, and "," and "_" grouping separators are ignored. Values above
// math.MaxUint64 return RANGE_EXCEEDED; anything else unparseable returns
// INVALID_NUMBER.
func ParseNumber(s string) (uint64, error) {
	cleaned := digitGrouping.Replace(strings.TrimSpace(width.Narrow.String(s)))
	if cleaned == "" {
		return 0, NewInvalidNumberError(s, "empty input")
	}
	if strings.HasPrefix(cleaned, "-") {
		return 0, NewInvalidNumberError(s, "negative numbers are not supported")
	}

	n, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, NewRangeError(s, math.MaxUint64)
		}
		return 0, NewInvalidNumberError(s, "not a decimal integer")
	}
	return n, nil
}
