package store

import (
	"github.com/google/uuid"

	"github.com/roach88/kazu/internal/numeral"
)

// Conversion is one journaled conversion.
type Conversion struct {
	ID     string `json:"id" yaml:"id"`
	Seq    int64  `json:"seq" yaml:"seq"`
	Number uint64 `json:"number,string" yaml:"number"`

	Kanji    string `json:"kanji" yaml:"kanji"`
	Katakana string `json:"katakana" yaml:"katakana"`
	Romaji   string `json:"romaji" yaml:"romaji"`

	// Settings that produced the renderings.
	Lexicon     string `json:"lexicon" yaml:"lexicon"`
	RomajiStyle string `json:"romaji_style" yaml:"romaji_style"`
	Euphony     bool   `json:"euphony" yaml:"euphony"`
}

// NewConversion builds an unsaved journal record from a result and the
// settings of the converter that produced it.
func NewConversion(r numeral.Result, s numeral.Settings) Conversion {
	return Conversion{
		Number:      r.Number(),
		Kanji:       r.Kanji(),
		Katakana:    r.Katakana(),
		Romaji:      r.Romaji(),
		Lexicon:     s.Lexicon,
		RomajiStyle: s.Romaji.String(),
		Euphony:     s.Euphony,
	}
}

// IDGenerator produces record ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 record ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
