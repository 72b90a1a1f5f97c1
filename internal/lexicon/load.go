package lexicon

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

var validate = validator.New()

// File is the on-disk form of a lexicon, shared by the YAML and CUE loaders.
type File struct {
	Name    string      `yaml:"name" json:"name" validate:"required"`
	Scripts ScriptFiles `yaml:"scripts" json:"scripts"`
}

// ScriptFiles holds one ScriptFile per script.
type ScriptFiles struct {
	Kanji    *ScriptFile `yaml:"kanji" json:"kanji" validate:"required"`
	Katakana *ScriptFile `yaml:"katakana" json:"katakana" validate:"required"`
	Romaji   *ScriptFile `yaml:"romaji" json:"romaji" validate:"required"`
}

// ScriptFile is the on-disk form of Words. Compound keys are decimal strings.
type ScriptFile struct {
	Separator  string            `yaml:"separator" json:"separator"`
	Digits     []string          `yaml:"digits" json:"digits" validate:"len=11,dive,required"`
	Hundred    string            `yaml:"hundred" json:"hundred" validate:"required"`
	Thousand   string            `yaml:"thousand" json:"thousand" validate:"required"`
	Magnitudes []string          `yaml:"magnitudes" json:"magnitudes" validate:"dive,required"`
	Compounds  map[string]string `yaml:"compounds,omitempty" json:"compounds,omitempty" validate:"dive,keys,numeric,endkeys,required"`
}

// Load reads a lexicon from a .yaml, .yml or .cue file.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = DecodeYAML(data)
	case ".cue":
		f, err = DecodeCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported lexicon file extension %q (want .yaml, .yml or .cue)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l, err := f.Lexicon()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// DecodeYAML parses a YAML lexicon, rejecting unknown fields.
func DecodeYAML(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &f, nil
}

// DecodeCUE compiles a CUE lexicon and unifies it with the #Lexicon schema.
// The filename is only used in error positions.
func DecodeCUE(data []byte, filename string) (*File, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling lexicon schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Lexicon")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &ValidationError{Field: "schema", Message: err.Error()}
	}

	var f File
	if err := unified.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding CUE: %w", err)
	}
	return &f, nil
}

// Lexicon validates the file and builds a Lexicon from it.
func (f *File) Lexicon() (*Lexicon, error) {
	if err := validate.Struct(f); err != nil {
		return nil, structErrors(err)
	}

	var words [numScripts]Words
	for _, s := range Scripts() {
		w, err := f.Scripts.get(s).words(s)
		if err != nil {
			return nil, err
		}
		words[s] = w
	}
	return New(f.Name, words[Kanji], words[Katakana], words[Romaji])
}

func (sf ScriptFiles) get(s Script) *ScriptFile {
	switch s {
	case Kanji:
		return sf.Kanji
	case Katakana:
		return sf.Katakana
	default:
		return sf.Romaji
	}
}

func (sf *ScriptFile) words(s Script) (Words, error) {
	w := Words{
		Hundred:    sf.Hundred,
		Thousand:   sf.Thousand,
		Magnitudes: slices.Clone(sf.Magnitudes),
		Separator:  sf.Separator,
	}
	copy(w.Digits[:], sf.Digits)

	if len(sf.Compounds) > 0 {
		w.Compounds = make(map[uint64]string, len(sf.Compounds))
		for k, v := range sf.Compounds {
			n, err := strconv.ParseUint(k, 10, 64)
			if err != nil {
				return Words{}, &ValidationError{Script: s.String(), Field: "compounds[" + k + "]", Message: "key is not a decimal number"}
			}
			w.Compounds[n] = v
		}
	}
	return w, nil
}

// File returns the on-disk form of l, suitable for YAML or JSON encoding.
func (l *Lexicon) File() File {
	f := File{Name: l.name}
	for _, s := range Scripts() {
		w := l.words[s]
		sf := &ScriptFile{
			Separator:  w.Separator,
			Digits:     slices.Clone(w.Digits[:]),
			Hundred:    w.Hundred,
			Thousand:   w.Thousand,
			Magnitudes: slices.Clone(w.Magnitudes),
		}
		if len(w.Compounds) > 0 {
			sf.Compounds = make(map[string]string, len(w.Compounds))
			for k, v := range w.Compounds {
				sf.Compounds[strconv.FormatUint(k, 10)] = v
			}
		}
		switch s {
		case Kanji:
			f.Scripts.Kanji = sf
		case Katakana:
			f.Scripts.Katakana = sf
		case Romaji:
			f.Scripts.Romaji = sf
		}
	}
	return f
}

// structErrors converts validator output into ValidationErrors.
func structErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{
			Field:   strings.TrimPrefix(fe.Namespace(), "File."),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		})
	}
	return errors.Join(errs...)
}
