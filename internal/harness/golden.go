package harness

import (
	"testing"

	"github.com/roach88/kazu/internal/testutil"
)

// RunWithGolden executes a suite and compares its Summary against
// testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error only if the suite's converter cannot be built; mismatches
// against the golden file fail t.
func RunWithGolden(t *testing.T, suite *Suite) (*Result, error) {
	t.Helper()

	result, err := Run(suite)
	if err != nil {
		return nil, err
	}
	testutil.AssertGolden(t, suite.Name, []byte(result.Summary()))
	return result, nil
}
