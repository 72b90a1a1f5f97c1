package lexicon

import (
	"fmt"
	"strings"
)

// Script identifies one of the three output writing systems.
type Script int

const (
	// Kanji is the logographic rendering, written without word spacing.
	Kanji Script = iota
	// Katakana is the syllabic (phonetic) rendering.
	Katakana
	// Romaji is the Latin transliteration.
	Romaji
)

const numScripts = 3

var scriptNames = [numScripts]string{"kanji", "katakana", "romaji"}

// Scripts returns every script in output order.
func Scripts() []Script {
	return []Script{Kanji, Katakana, Romaji}
}

// Valid reports whether s is one of the defined scripts.
func (s Script) Valid() bool {
	return s >= 0 && s < numScripts
}

func (s Script) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Script(%d)", int(s))
	}
	return scriptNames[s]
}

// ParseScript resolves a script by its case-insensitive name.
func ParseScript(name string) (Script, error) {
	for i, n := range scriptNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Script(i), nil
		}
	}
	return 0, fmt.Errorf("unknown script %q: must be one of %v", name, scriptNames)
}
