package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/kazu/internal/lexicon"
	"github.com/roach88/kazu/internal/numeral"
)

// Suite is a named list of conversion cases sharing one converter setup.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description,omitempty"`

	// Lexicon is an optional lexicon file, relative to the suite file.
	Lexicon string `yaml:"lexicon,omitempty"`

	// Romaji is the romaji style name; empty means hepburn.
	Romaji string `yaml:"romaji,omitempty"`

	// Euphony enables euphonic compounds.
	Euphony bool `yaml:"euphony,omitempty"`

	// Cases are run in order.
	Cases []Case `yaml:"cases"`

	// dir is the directory the suite was loaded from.
	dir string
}

// Case is one input and its expected output.
type Case struct {
	// Number is the decimal input, passed through numeral.ParseNumber.
	Number string `yaml:"number"`

	Kanji    string `yaml:"kanji,omitempty"`
	Katakana string `yaml:"katakana,omitempty"`
	Romaji   string `yaml:"romaji,omitempty"`

	// Error is the expected numeral.ErrorCode. When set, the conversion must fail.
	Error string `yaml:"error,omitempty"`
}

func (c Case) expectations() int {
	n := 0
	for _, s := range []string{c.Kanji, c.Katakana, c.Romaji, c.Error} {
		if s != "" {
			n++
		}
	}
	return n
}

var knownErrorCodes = []string{
	string(numeral.ErrCodeRangeExceeded),
	string(numeral.ErrCodeInvalidNumber),
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	suite.dir = filepath.Dir(path)
	return &suite, nil
}

func validateSuite(s *Suite) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	if _, err := lexicon.ParseRomajiStyle(s.Romaji); err != nil {
		return err
	}
	for i, c := range s.Cases {
		if strings.TrimSpace(c.Number) == "" {
			return fmt.Errorf("cases[%d]: number is required", i)
		}
		if c.expectations() == 0 {
			return fmt.Errorf("cases[%d]: at least one of kanji, katakana, romaji or error is required", i)
		}
		if c.Error != "" && !slices.Contains(knownErrorCodes, c.Error) {
			return fmt.Errorf("cases[%d]: unknown error code %q: must be one of %v", i, c.Error, knownErrorCodes)
		}
	}
	return nil
}

// Converter builds the converter described by the suite's settings.
func (s *Suite) Converter() (*numeral.Converter, error) {
	style, err := lexicon.ParseRomajiStyle(s.Romaji)
	if err != nil {
		return nil, err
	}

	opts := []numeral.Option{
		numeral.WithRomajiStyle(style),
		numeral.WithEuphony(s.Euphony),
	}
	if s.Lexicon != "" {
		path := s.Lexicon
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		lex, err := lexicon.Load(path)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", s.Name, err)
		}
		opts = append(opts, numeral.WithLexicon(lex))
	}
	return numeral.New(opts...), nil
}

// FindSuites returns path itself when it is a file, or every .yaml/.yml
// file under it (sorted) when it is a directory.
func FindSuites(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ext := filepath.Ext(p); !d.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, p)
		}
		return nil
	})
	slices.Sort(files)
	return files, err
}
