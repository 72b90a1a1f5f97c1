package numeral

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/roach88/kazu/internal/lexicon"
	"github.com/roach88/kazu/internal/testutil"
)

func table(t *testing.T, c *Converter, numbers []uint64) []byte {
	t.Helper()
	var b strings.Builder
	for _, n := range numbers {
		fmt.Fprintln(&b, convert(t, c, n).String())
	}
	return []byte(b.String())
}

func TestGolden_ConvertTable(t *testing.T) {
	numbers := []uint64{
		0, 1, 2, 9, 10, 11, 19, 20, 99, 100, 101, 110, 111, 200, 999,
		1000, 1001, 1010, 1100, 2000, 9999, 10000, 10001, 10010, 20000,
		99999, 100000, 1000000, 10000000, 12345678, 100000000, 100000001,
		100010000, 1000000000000, 10000000000000000, math.MaxUint64,
	}
	testutil.AssertGolden(t, "convert_table", table(t, New(), numbers))
}

func TestGolden_EuphonyWapuro(t *testing.T) {
	numbers := []uint64{300, 308, 600, 800, 3000, 3800, 8000, 8600, 33333, 300000000, math.MaxUint64}
	c := New(WithEuphony(true), WithRomajiStyle(lexicon.Wapuro))
	testutil.AssertGolden(t, "convert_euphony_wapuro", table(t, c, numbers))
}
