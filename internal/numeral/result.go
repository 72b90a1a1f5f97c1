package numeral

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/roach88/kazu/internal/lexicon"
)

// Result is the outcome of one conversion. It is an immutable value.
type Result struct {
	number   uint64
	kanji    string
	katakana string
	romaji   string
}

// Number returns the converted value.
func (r Result) Number() uint64 { return r.number }

// Kanji returns the logographic rendering, e.g. 二万三.
func (r Result) Kanji() string { return r.kanji }

// Katakana returns the syllabic rendering, e.g. ニ マン サン.
func (r Result) Katakana() string { return r.katakana }

// Romaji returns the Latin rendering, e.g. ni man san.
func (r Result) Romaji() string { return r.romaji }

// In returns the rendering for s.
func (r Result) In(s lexicon.Script) string {
	switch s {
	case lexicon.Kanji:
		return r.kanji
	case lexicon.Katakana:
		return r.katakana
	case lexicon.Romaji:
		return r.romaji
	}
	panic(fmt.Sprintf("numeral: invalid script %d", int(s)))
}

// String formats the result as "number  =>  kanji  =>  katakana  =>  romaji".
func (r Result) String() string {
	return fmt.Sprintf("%d  =>  %s  =>  %s  =>  %s", r.number, r.kanji, r.katakana, r.romaji)
}

// Record is the serialized form of a Result. Number is a decimal string
// because values above 2^53 do not survive JSON consumers that use floats.
type Record struct {
	Number   string `json:"number" yaml:"number"`
	Kanji    string `json:"kanji" yaml:"kanji"`
	Katakana string `json:"katakana" yaml:"katakana"`
	Romaji   string `json:"romaji" yaml:"romaji"`
}

// Record returns the serialized form of r.
func (r Result) Record() Record {
	return Record{
		Number:   strconv.FormatUint(r.number, 10),
		Kanji:    r.kanji,
		Katakana: r.katakana,
		Romaji:   r.romaji,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Record())
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (interface{}, error) {
	return r.Record(), nil
}
