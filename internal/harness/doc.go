// Package harness runs conformance suites against a numeral.Converter.
//
// A suite is a YAML file listing inputs and the renderings they must
// produce:
//
//	name: basics
//	description: "Elision and empty groups"
//	lexicon: ../lexicons/custom.yaml   # optional, relative to the suite file
//	romaji: hepburn                    # optional: hepburn | wapuro
//	euphony: false                     # optional
//	cases:
//	  - number: "10"
//	    kanji: 十
//	    katakana: ジュウ
//	    romaji: jū
//	  - number: "18446744073709551616"
//	    error: RANGE_EXCEEDED
//
// Expectations are partial: a script left out of a case is not checked.
// Numbers are strings so that values beyond 2^64 can be written down.
//
// # Deterministic Output
//
// Conversion is pure, so running a suite twice produces byte-identical
// results. RunWithGolden snapshots a run's Summary for golden comparison.
package harness
