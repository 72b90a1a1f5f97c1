package numeral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"42", 42},
		{"  10001\n", 10001},
		{"1,0000,0000", 100000000},
		{"1_000_000", 1000000},
		{"１２３", 123},
		{"１，０００", 1000},
		{"18446744073709551615", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber_Errors(t *testing.T) {
	tests := []struct {
		in        string
		wantRange bool
	}{
		{"", false},
		{"   ", false},
		{"-1", false},
		{"1.5", false},
		{"+7", false},
		{"十", false},
		{"0x10", false},
		{"18446744073709551616", true},
		{"99999999999999999999999", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseNumber(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.wantRange, IsRangeError(err), err.Error())
			assert.Equal(t, !tt.wantRange, IsInvalidNumber(err), err.Error())
		})
	}
}

func TestParseNumber_NegativeMessage(t *testing.T) {
	_, err := ParseNumber("-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative numbers are not supported")
	assert.Contains(t, err.Error(), "input=-5")
}
