package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCommandMissingArgs(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})

	_, _, err := execute(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestTestCommandNonExistentPath(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})

	out, _, err := execute(t, cmd, "/nonexistent/cases")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}

func TestTestCommandAllPass(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})

	out, _, err := execute(t, cmd, filepath.Join("testdata", "cases"))
	require.NoError(t, err)
	assert.Contains(t, out, "suite: small")
	assert.Contains(t, out, "suite: wapuro")
	assert.Contains(t, out, "PASS 123  =>  百二十三  =>  ヒャク ニ ジュウ サン  =>  hyaku ni jū san")
	assert.Contains(t, out, "PASS -5  !!  INVALID_NUMBER")
	assert.Contains(t, out, "Test Summary: 2 passed, 0 failed, 2 total")
	assert.Contains(t, out, "✓ All suites passed")
}

func TestTestCommandFilter(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "json"})

	out, _, err := execute(t, cmd, filepath.Join("testdata", "cases"), "--filter", "wap*")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Total)
	require.Len(t, resp.Data.Suites, 1)
	assert.Equal(t, "wapuro", resp.Data.Suites[0].Suite)
	assert.Equal(t, 3, resp.Data.Suites[0].Passed)
}

func TestTestCommandNoSuites(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})

	out, _, err := execute(t, cmd, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No suites found.")
}

func TestTestCommandFailure(t *testing.T) {
	dir := t.TempDir()
	suite := `name: wrong
cases:
  - number: "11"
    kanji: 一十一
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(suite), 0644))

	cmd := NewTestCommand(&RootOptions{Format: "json"})
	out, _, err := execute(t, cmd, dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Suites, 1)
	require.Len(t, resp.Data.Suites[0].Cases, 1)
	assert.Contains(t, resp.Data.Suites[0].Cases[0].Errors[0], `expected "一十一", got "十一"`)
}

func TestTestCommandMalformedSuite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: bad\ncases: []\nextra: 1\n"), 0644))

	cmd := NewTestCommand(&RootOptions{Format: "text"})
	out, _, err := execute(t, cmd, dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E007]")
}
