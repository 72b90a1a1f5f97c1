package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomajiStyleApply(t *testing.T) {
	tests := []struct {
		name  string
		style RomajiStyle
		in    string
		want  string
	}{
		{"hepburn keeps macrons", Hepburn, "kyū sen jū", "kyū sen jū"},
		{"wapuro long u", Wapuro, "kyū", "kyuu"},
		{"wapuro ten", Wapuro, "ni jū go", "ni juu go"},
		{"wapuro long o", Wapuro, "san chō", "san chou"},
		{"wapuro leaves plain ascii", Wapuro, "hachi hyaku", "hachi hyaku"},
		{"wapuro decomposed input", Wapuro, "kyu\u0304", "kyuu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Apply(tt.in))
		})
	}
}

func TestParseRomajiStyle(t *testing.T) {
	st, err := ParseRomajiStyle("")
	require.NoError(t, err)
	assert.Equal(t, Hepburn, st)

	st, err = ParseRomajiStyle("WAPURO")
	require.NoError(t, err)
	assert.Equal(t, Wapuro, st)
	assert.Equal(t, "wapuro", st.String())

	_, err = ParseRomajiStyle("kunrei")
	assert.Error(t, err)
}
