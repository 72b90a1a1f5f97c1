package lexicon

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RomajiStyle selects how long vowels are written in romaji output.
type RomajiStyle int

const (
	// Hepburn marks long vowels with a macron: kyū, jū, chō.
	Hepburn RomajiStyle = iota
	// Wapuro spells long vowels in plain ASCII the way they are typed: kyuu, juu, chou.
	Wapuro
)

var romajiStyleNames = []string{"hepburn", "wapuro"}

// combiningMacron is U+0304, which NFD splits off ō and ū.
const combiningMacron = '\u0304'

func (st RomajiStyle) String() string {
	if st < 0 || int(st) >= len(romajiStyleNames) {
		return fmt.Sprintf("RomajiStyle(%d)", int(st))
	}
	return romajiStyleNames[st]
}

// ParseRomajiStyle resolves a style by name. The empty string means Hepburn.
func ParseRomajiStyle(name string) (RomajiStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Hepburn, nil
	}
	for i, n := range romajiStyleNames {
		if name == n {
			return RomajiStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown romaji style %q: must be one of %v", name, romajiStyleNames)
}

// Apply rewrites Hepburn romaji into this style.
//
// For Wapuro every macron becomes a trailing "u". That is exact for the
// long vowels that occur in numerals (ō = ou, ū = uu).
func (st RomajiStyle) Apply(s string) string {
	if st != Wapuro {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Map(func(r rune) rune {
		if r == combiningMacron {
			return 'u'
		}
		return r
	}), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
