// Package numeral converts unsigned integers into Japanese numerals written
// in kanji, katakana and romaji.
//
// Conversion happens in two steps. Breakdown splits the number into groups of
// four digits (base 10000), most significant first, and expands each group
// into a language-neutral list of Terms: digit words, place words (ten,
// hundred, thousand) and one magnitude word (man, oku, chō, kei) for every
// group above the lowest. The Converter then spells those terms once per
// script using a lexicon.Lexicon, so the three outputs always describe the
// same breakdown.
//
// Two rules shape the breakdown:
//   - "one" is never spoken before ten, hundred or thousand (十, not 一十)
//   - a group of four zeros contributes nothing, not even its magnitude word
//
// Zero itself is the only number whose output contains the zero word.
//
// Conversion is pure. Converters are immutable and safe for concurrent use.
package numeral
