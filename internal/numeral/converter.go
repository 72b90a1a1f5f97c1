package numeral

import (
	"math"
	"strconv"
	"strings"

	"github.com/roach88/kazu/internal/lexicon"
)

// Converter spells numbers with a fixed lexicon and style.
// The zero value is not usable; construct with New.
type Converter struct {
	lex     *lexicon.Lexicon
	romaji  lexicon.RomajiStyle
	euphony bool
	max     uint64
}

// Option configures a Converter.
type Option func(*Converter)

// WithLexicon selects the word tables. A nil lexicon keeps the default.
func WithLexicon(l *lexicon.Lexicon) Option {
	return func(c *Converter) {
		if l != nil {
			c.lex = l
		}
	}
}

// WithRomajiStyle selects how long vowels are written in romaji.
func WithRomajiStyle(st lexicon.RomajiStyle) Option {
	return func(c *Converter) {
		c.romaji = st
	}
}

// WithEuphony enables euphonic compounds (sanbyaku, happyaku, sanzen, ...)
// wherever the lexicon defines them. Kanji output is unaffected.
func WithEuphony(on bool) Option {
	return func(c *Converter) {
		c.euphony = on
	}
}

// New creates a Converter. Without options it uses lexicon.Default, Hepburn
// romaji and no euphony.
func New(opts ...Option) *Converter {
	c := &Converter{lex: lexicon.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.max = maxValue(c.lex.Tiers())
	return c
}

// maxValue is 10^(4*(tiers+1)) - 1, capped at the largest uint64.
func maxValue(tiers int) uint64 {
	digits := 4 * (tiers + 1)
	if digits > 19 {
		return math.MaxUint64
	}
	v := uint64(1)
	for range digits {
		v *= 10
	}
	return v - 1
}

// Settings describes how a Converter spells numbers.
type Settings struct {
	Lexicon string
	Romaji  lexicon.RomajiStyle
	Euphony bool
}

// Settings returns the converter's configuration.
func (c *Converter) Settings() Settings {
	return Settings{
		Lexicon: c.lex.Name(),
		Romaji:  c.romaji,
		Euphony: c.euphony,
	}
}

// Lexicon returns the word tables in use.
func (c *Converter) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// MaxValue returns the largest number the converter's lexicon can spell.
func (c *Converter) MaxValue() uint64 {
	return c.max
}

// Breakdown returns the groups of n, or a range error if n needs a
// magnitude tier the lexicon lacks.
func (c *Converter) Breakdown(n uint64) ([]Group, error) {
	if n > c.max {
		return nil, NewRangeError(strconv.FormatUint(n, 10), c.max)
	}
	return Breakdown(n), nil
}

// Convert spells n in every script.
//
// Returns a RANGE_EXCEEDED ConversionError when n needs more magnitude tiers
// than the lexicon defines; no partial result is produced.
func (c *Converter) Convert(n uint64) (Result, error) {
	groups, err := c.Breakdown(n)
	if err != nil {
		return Result{}, err
	}

	if n == 0 {
		return Result{
			number:   0,
			kanji:    c.lex.Digit(lexicon.Kanji, 0),
			katakana: c.lex.Digit(lexicon.Katakana, 0),
			romaji:   c.romaji.Apply(c.lex.Digit(lexicon.Romaji, 0)),
		}, nil
	}

	return Result{
		number:   n,
		kanji:    c.spell(lexicon.Kanji, groups),
		katakana: c.spell(lexicon.Katakana, groups),
		romaji:   c.romaji.Apply(c.spell(lexicon.Romaji, groups)),
	}, nil
}

// ConvertString parses s with ParseNumber and converts the result.
func (c *Converter) ConvertString(s string) (Result, error) {
	n, err := ParseNumber(s)
	if err != nil {
		return Result{}, err
	}
	return c.Convert(n)
}

// spell joins the words for every term of groups with the script's separator.
func (c *Converter) spell(s lexicon.Script, groups []Group) string {
	var words []string
	for _, g := range groups {
		terms := g.Terms
		for i := 0; i < len(terms); i++ {
			t := terms[i]
			switch t.Kind {
			case TermDigit:
				if c.euphony && i+1 < len(terms) && terms[i+1].Kind == TermPlace {
					value := uint64(t.Value * pow10[terms[i+1].Value])
					if w, ok := c.lex.Compound(s, value); ok {
						words = append(words, w)
						i++
						continue
					}
				}
				words = append(words, c.lex.Digit(s, t.Value))
			case TermPlace:
				words = append(words, c.lex.Place(s, t.Value))
			case TermMagnitude:
				words = append(words, c.lex.Magnitude(s, t.Value))
			}
		}
	}
	return strings.Join(words, c.lex.Separator(s))
}

var defaultConverter = New()

// Convert spells n with the default converter. Every uint64 is in range for
// the default lexicon, so the error is only non-nil if that invariant breaks.
func Convert(n uint64) (Result, error) {
	return defaultConverter.Convert(n)
}

// MustConvert is like Convert but panics on error.
func MustConvert(n uint64) Result {
	r, err := Convert(n)
	if err != nil {
		panic(err)
	}
	return r
}
