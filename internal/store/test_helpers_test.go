package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/kazu/internal/numeral"
	"github.com/roach88/kazu/internal/testutil"
)

// createTestStore creates a new file-backed store with predictable ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDGenerator("conv")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestConversion converts n with the default converter.
func createTestConversion(t *testing.T, n uint64) Conversion {
	t.Helper()
	conv := numeral.New()
	res, err := conv.Convert(n)
	if err != nil {
		t.Fatalf("Convert(%d) failed: %v", n, err)
	}
	return NewConversion(res, conv.Settings())
}
