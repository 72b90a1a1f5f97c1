package numeral

import (
	"fmt"
	"slices"
)

// GroupBase is the size of one magnitude tier: four decimal digits.
const GroupBase = 10000

// MaxGroupValue is the largest value a single group can hold.
const MaxGroupValue = GroupBase - 1

var pow10 = [...]int{1, 10, 100, 1000}

// TermKind classifies a Term.
type TermKind int

const (
	// TermDigit is a digit word; Value is 1-9.
	TermDigit TermKind = iota
	// TermPlace is ten, hundred or thousand; Value is the exponent 1-3.
	TermPlace
	// TermMagnitude is the word for a four-digit tier; Value is the tier (1 = 10^4).
	TermMagnitude
)

func (k TermKind) String() string {
	switch k {
	case TermDigit:
		return "digit"
	case TermPlace:
		return "place"
	case TermMagnitude:
		return "magnitude"
	}
	return fmt.Sprintf("TermKind(%d)", int(k))
}

// Term is one word of a numeral, independent of script.
type Term struct {
	Kind  TermKind
	Value int
}

func (t Term) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.Value)
}

// Group is one non-empty base-10000 chunk of a number.
type Group struct {
	// Tier is the group's position: 0 for units, 1 for man (10^4), 2 for oku (10^8), ...
	Tier int

	// Value is the chunk itself, 1-9999.
	Value int

	// Terms spells Value, followed by the magnitude term when Tier > 0.
	Terms []Term
}

// RenderGroup expands a value in [0, 9999] into terms.
//
// Each place from thousands down to tens contributes nothing when its digit
// is 0, only the place word when its digit is 1, and digit + place otherwise.
// A non-zero units digit is appended last. Zero yields no terms.
//
// RenderGroup panics if n is outside [0, 9999].
func RenderGroup(n int) []Term {
	if n < 0 || n > MaxGroupValue {
		panic(fmt.Sprintf("numeral: group value %d outside [0, %d]", n, MaxGroupValue))
	}

	var terms []Term
	for exp := len(pow10) - 1; exp >= 1; exp-- {
		d := n / pow10[exp]
		n %= pow10[exp]
		switch {
		case d == 0:
		case d == 1:
			terms = append(terms, Term{Kind: TermPlace, Value: exp})
		default:
			terms = append(terms, Term{Kind: TermDigit, Value: d}, Term{Kind: TermPlace, Value: exp})
		}
	}
	if n > 0 {
		terms = append(terms, Term{Kind: TermDigit, Value: n})
	}
	return terms
}

// Breakdown splits n into its non-empty groups, most significant first.
// Zero has no groups.
func Breakdown(n uint64) []Group {
	var groups []Group
	for tier := 0; n > 0; tier++ {
		v := int(n % GroupBase)
		n /= GroupBase
		if v == 0 {
			continue
		}
		terms := RenderGroup(v)
		if tier > 0 {
			terms = append(terms, Term{Kind: TermMagnitude, Value: tier})
		}
		groups = append(groups, Group{Tier: tier, Value: v, Terms: terms})
	}
	slices.Reverse(groups)
	return groups
}
