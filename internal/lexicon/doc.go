// Package lexicon holds the word tables used to spell Japanese numerals.
//
// A Lexicon maps each Script (kanji, katakana, romaji) to an ordered set of
// words: eleven digit words (zero through nine, then ten), the place words for
// hundred and thousand, and the magnitude words used every four digits above
// that (man, oku, chō, kei, ...). Tables for the three scripts are indexed
// identically; Validate enforces that.
//
// Lexicons are immutable once built and safe for concurrent use. Lookups take
// indexes that the numeral package computes itself, so an index outside a
// table is a programming error and panics instead of returning an error.
//
// # Lexicon Files
//
// Custom lexicons are read by Load from YAML or CUE files:
//
//	name: hepburn
//	scripts:
//	  kanji:
//	    separator: ""
//	    digits: [零, 一, 二, 三, 四, 五, 六, 七, 八, 九, 十]
//	    hundred: 百
//	    thousand: 千
//	    magnitudes: [万, 億, 兆, 京]
//	  katakana: { ... }
//	  romaji: { ... }
//
// CUE files are unified with the embedded #Lexicon schema before decoding.
package lexicon
