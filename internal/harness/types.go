package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/kazu/internal/numeral"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Index  int    `json:"index" yaml:"index"`
	Number string `json:"number" yaml:"number"`
	Pass   bool   `json:"pass" yaml:"pass"`

	// Got is the conversion output, nil when conversion failed.
	Got *numeral.Record `json:"got,omitempty" yaml:"got,omitempty"`

	// ErrorCode is the code of the conversion error, if any.
	ErrorCode string `json:"error_code,omitempty" yaml:"error_code,omitempty"`

	// Errors lists every mismatch. Empty if Pass is true.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (c *CaseResult) fail(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
	c.Pass = false
}

// Result is the outcome of a suite run.
type Result struct {
	Suite  string       `json:"suite" yaml:"suite"`
	Pass   bool         `json:"pass" yaml:"pass"`
	Passed int          `json:"passed" yaml:"passed"`
	Failed int          `json:"failed" yaml:"failed"`
	Cases  []CaseResult `json:"cases" yaml:"cases"`
}

// NewResult creates a new passing result.
func NewResult(suite string) *Result {
	return &Result{
		Suite: suite,
		Pass:  true,
		Cases: []CaseResult{},
	}
}

// Add records a case outcome.
func (r *Result) Add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if c.Pass {
		r.Passed++
		return
	}
	r.Failed++
	r.Pass = false
}

// Errors returns every case error prefixed with its case number.
func (r *Result) Errors() []string {
	var errs []string
	for _, c := range r.Cases {
		for _, e := range c.Errors {
			errs = append(errs, fmt.Sprintf("case %d (%s): %s", c.Index, c.Number, e))
		}
	}
	return errs
}

// Summary renders the result as stable plain text, one line per case.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "suite: %s\n", r.Suite)
	for _, c := range r.Cases {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		switch {
		case c.Got != nil:
			fmt.Fprintf(&b, "%s %s  =>  %s  =>  %s  =>  %s\n", status, c.Got.Number, c.Got.Kanji, c.Got.Katakana, c.Got.Romaji)
		default:
			fmt.Fprintf(&b, "%s %s  !!  %s\n", status, c.Number, c.ErrorCode)
		}
		for _, e := range c.Errors {
			fmt.Fprintf(&b, "    %s\n", e)
		}
	}
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	fmt.Fprintf(&b, "%s %d/%d\n", status, r.Passed, r.Passed+r.Failed)
	return b.String()
}
