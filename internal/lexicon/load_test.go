package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func assertSameWords(t *testing.T, want, got *Lexicon) {
	t.Helper()
	require.Equal(t, want.Tiers(), got.Tiers())
	for _, s := range Scripts() {
		assert.Equal(t, want.Words(s), got.Words(s), s.String())
	}
}

func TestLoad_YAML(t *testing.T) {
	l, err := Load("testdata/standard.yaml")
	require.NoError(t, err)

	assert.Equal(t, "standard", l.Name())
	assertSameWords(t, Default(), l)
}

func TestLoad_CUE(t *testing.T) {
	l, err := Load("testdata/standard.cue")
	require.NoError(t, err)

	assert.Equal(t, "standard", l.Name())
	assertSameWords(t, Default(), l)
}

func TestLoad_CUESchemaRejectsTenDigits(t *testing.T) {
	_, err := Load("testdata/ten_digits.cue")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestLoad_MismatchedMagnitudes(t *testing.T) {
	_, err := Load("testdata/mismatched.yaml")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "magnitudes")
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load("testdata/unknown_field.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magnitude")
}

func TestLoad_ShortDigitTable(t *testing.T) {
	_, err := Load("testdata/short_digits.yaml")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "Digits")
}

func TestLoad_MissingScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanji_only.yaml")
	content := `name: partial
scripts:
  kanji:
    digits: [零, 一, 二, 三, 四, 五, 六, 七, 八, 九, 十]
    hundred: 百
    thousand: 千
    magnitudes: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "Katakana")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/does_not_exist.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported lexicon file extension")
}

func TestFile_EncodesDefault(t *testing.T) {
	f := Default().File()
	data, err := yaml.Marshal(f)
	require.NoError(t, err)

	decoded, err := DecodeYAML(data)
	require.NoError(t, err)
	l, err := decoded.Lexicon()
	require.NoError(t, err)

	assertSameWords(t, Default(), l)
}
