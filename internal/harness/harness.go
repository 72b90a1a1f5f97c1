package harness

import (
	"errors"
	"io"
	"log/slog"

	"github.com/roach88/kazu/internal/numeral"
)

// Harness runs suites against one converter.
type Harness struct {
	conv   *numeral.Converter
	logger *slog.Logger
}

// New creates a harness. A nil logger discards output.
func New(conv *numeral.Converter, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{conv: conv, logger: logger}
}

// Run executes a suite using the suite's own converter settings.
func Run(suite *Suite) (*Result, error) {
	conv, err := suite.Converter()
	if err != nil {
		return nil, err
	}
	return New(conv, nil).Run(suite), nil
}

// Run executes every case of suite in order.
func (h *Harness) Run(suite *Suite) *Result {
	result := NewResult(suite.Name)
	for i, c := range suite.Cases {
		cr := h.runCase(i, c)
		if !cr.Pass {
			h.logger.Debug("case failed", "suite", suite.Name, "case", i, "number", c.Number, "errors", cr.Errors)
		}
		result.Add(cr)
	}
	h.logger.Info("suite finished", "suite", suite.Name, "passed", result.Passed, "failed", result.Failed)
	return result
}

func (h *Harness) runCase(i int, c Case) CaseResult {
	cr := CaseResult{Index: i, Number: c.Number, Pass: true}

	res, err := h.conv.ConvertString(c.Number)
	if err != nil {
		var ce *numeral.ConversionError
		if errors.As(err, &ce) {
			cr.ErrorCode = string(ce.Code)
		}
		switch {
		case c.Error == "":
			cr.fail("unexpected error: %v", err)
		case c.Error != cr.ErrorCode:
			cr.fail("expected error %s, got %v", c.Error, err)
		}
		return cr
	}

	rec := res.Record()
	cr.Got = &rec
	if c.Error != "" {
		cr.fail("expected error %s, got %q", c.Error, rec.Kanji)
	}
	check := func(script, want, got string) {
		if want != "" && want != got {
			cr.fail("%s: expected %q, got %q", script, want, got)
		}
	}
	check("kanji", c.Kanji, rec.Kanji)
	check("katakana", c.Katakana, rec.Katakana)
	check("romaji", c.Romaji, rec.Romaji)
	return cr
}
