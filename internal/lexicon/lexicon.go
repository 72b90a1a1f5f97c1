package lexicon

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// DigitCount is the size of every digit table: zero through nine, then ten.
const DigitCount = 11

// Words is the complete word set for one script.
type Words struct {
	// Digits holds zero through nine at indexes 0-9 and ten at index 10.
	Digits [DigitCount]string

	Hundred  string
	Thousand string

	// Magnitudes lists the words for 10^4, 10^8, 10^12, ... in order.
	// Magnitudes[0] is tier 1.
	Magnitudes []string

	// Separator is placed between adjacent words.
	Separator string

	// Compounds maps a value such as 300 to a single euphonic word
	// ("sanbyaku") that replaces digit + place when euphony is enabled.
	Compounds map[uint64]string
}

func (w Words) clone() Words {
	w.Magnitudes = slices.Clone(w.Magnitudes)
	w.Compounds = maps.Clone(w.Compounds)
	return w
}

func (w Words) normalized() Words {
	for i, d := range w.Digits {
		w.Digits[i] = norm.NFC.String(d)
	}
	w.Hundred = norm.NFC.String(w.Hundred)
	w.Thousand = norm.NFC.String(w.Thousand)
	for i, m := range w.Magnitudes {
		w.Magnitudes[i] = norm.NFC.String(m)
	}
	for k, v := range w.Compounds {
		w.Compounds[k] = norm.NFC.String(v)
	}
	return w
}

// Lexicon is an immutable set of Words keyed by Script.
type Lexicon struct {
	name  string
	words [numScripts]Words
}

// New builds a lexicon from per-script words. The words are copied and NFC
// normalized, then validated.
func New(name string, kanji, katakana, romaji Words) (*Lexicon, error) {
	l := &Lexicon{name: name}
	for s, w := range [numScripts]Words{kanji, katakana, romaji} {
		l.words[s] = w.clone().normalized()
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Name identifies the lexicon in journals and reports.
func (l *Lexicon) Name() string {
	return l.name
}

// Words returns a copy of the word set for s.
func (l *Lexicon) Words(s Script) Words {
	return l.script(s).clone()
}

// Tiers returns the number of magnitude words, which is the same for every script.
func (l *Lexicon) Tiers() int {
	return len(l.words[Kanji].Magnitudes)
}

// Digit returns the word for d, 0 <= d <= 10.
func (l *Lexicon) Digit(s Script, d int) string {
	w := l.script(s)
	if d < 0 || d >= DigitCount {
		panic(indexPanic("digit", s, d, DigitCount-1))
	}
	return w.Digits[d]
}

// Place returns the word for 10^exp, 1 <= exp <= 3.
func (l *Lexicon) Place(s Script, exp int) string {
	w := l.script(s)
	switch exp {
	case 1:
		return w.Digits[10]
	case 2:
		return w.Hundred
	case 3:
		return w.Thousand
	}
	panic(indexPanic("place", s, exp, 3))
}

// Magnitude returns the word for 10^(4*tier), 1 <= tier <= Tiers().
func (l *Lexicon) Magnitude(s Script, tier int) string {
	w := l.script(s)
	if tier < 1 || tier > len(w.Magnitudes) {
		panic(indexPanic("magnitude", s, tier, len(w.Magnitudes)))
	}
	return w.Magnitudes[tier-1]
}

// Separator returns the string placed between adjacent words of s.
func (l *Lexicon) Separator(s Script) string {
	return l.script(s).Separator
}

// Compound returns the euphonic word spelling value, if the script has one.
func (l *Lexicon) Compound(s Script, value uint64) (string, bool) {
	w, ok := l.script(s).Compounds[value]
	return w, ok
}

func (l *Lexicon) script(s Script) *Words {
	if !s.Valid() {
		panic(fmt.Sprintf("lexicon: invalid script %d", int(s)))
	}
	return &l.words[s]
}

// Validate checks the structural invariants: every word is non-empty, the
// magnitude tables have the same length in every script, and compound keys
// are of the form d*10^exp with 2 <= d <= 9 and 1 <= exp <= 3.
//
// All problems are reported, joined into one error.
func (l *Lexicon) Validate() error {
	var errs []error
	add := func(s Script, field, msg string) {
		errs = append(errs, &ValidationError{Script: s.String(), Field: field, Message: msg})
	}

	for _, s := range Scripts() {
		w := l.words[s]
		for i, d := range w.Digits {
			if d == "" {
				add(s, "digits["+strconv.Itoa(i)+"]", "word is empty")
			}
		}
		if w.Hundred == "" {
			add(s, "hundred", "word is empty")
		}
		if w.Thousand == "" {
			add(s, "thousand", "word is empty")
		}
		for i, m := range w.Magnitudes {
			if m == "" {
				add(s, "magnitudes["+strconv.Itoa(i)+"]", "word is empty")
			}
		}
		for _, k := range slices.Sorted(maps.Keys(w.Compounds)) {
			if !isCompoundKey(k) {
				add(s, "compounds["+strconv.FormatUint(k, 10)+"]", "key must be a digit 2-9 times 10, 100 or 1000")
			} else if w.Compounds[k] == "" {
				add(s, "compounds["+strconv.FormatUint(k, 10)+"]", "word is empty")
			}
		}
	}

	want := len(l.words[Kanji].Magnitudes)
	for _, s := range Scripts()[1:] {
		if got := len(l.words[s].Magnitudes); got != want {
			errs = append(errs, &ValidationError{
				Field:   "magnitudes",
				Message: fmt.Sprintf("%s has %d magnitude words, %s has %d", Kanji, want, s, got),
			})
		}
	}

	return errors.Join(errs...)
}

func isCompoundKey(k uint64) bool {
	for _, place := range []uint64{10, 100, 1000} {
		if k%place == 0 {
			if d := k / place; d >= 2 && d <= 9 {
				return true
			}
		}
	}
	return false
}
