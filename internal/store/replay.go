package store

import (
	"context"
	"fmt"

	"github.com/roach88/kazu/internal/numeral"
)

// Converter is the part of numeral.Converter that Replay needs.
type Converter interface {
	Convert(n uint64) (numeral.Result, error)
}

// ResolveFunc picks the converter to replay a record with. Returning a nil
// Converter skips the record (e.g. it was made with a lexicon that is not
// available); returning an error aborts the replay.
type ResolveFunc func(c Conversion) (Converter, error)

// Mismatch is a journaled conversion whose replay differs from the record.
type Mismatch struct {
	Conversion Conversion      `json:"conversion" yaml:"conversion"`
	Got        *numeral.Record `json:"got,omitempty" yaml:"got,omitempty"`
	Err        string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// ReplayReport summarizes a replay.
type ReplayReport struct {
	Checked    int        `json:"checked" yaml:"checked"`
	Skipped    int        `json:"skipped" yaml:"skipped"`
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`
}

// Deterministic reports whether every checked record reproduced exactly.
func (r ReplayReport) Deterministic() bool {
	return len(r.Mismatches) == 0
}

// Replay re-converts every journaled record in journal order and compares
// the output byte for byte with what was stored.
func (s *Store) Replay(ctx context.Context, resolve ResolveFunc) (ReplayReport, error) {
	report := ReplayReport{Mismatches: []Mismatch{}}

	conversions, err := s.ReadConversions(ctx, 0)
	if err != nil {
		return report, fmt.Errorf("replay: %w", err)
	}

	for _, c := range conversions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		conv, err := resolve(c)
		if err != nil {
			return report, fmt.Errorf("replay %s: %w", c.ID, err)
		}
		if conv == nil {
			report.Skipped++
			continue
		}
		report.Checked++

		res, err := conv.Convert(c.Number)
		if err != nil {
			report.Mismatches = append(report.Mismatches, Mismatch{Conversion: c, Err: err.Error()})
			s.logger.Warn("replay failed", "id", c.ID, "number", c.Number, "error", err)
			continue
		}
		if res.Kanji() != c.Kanji || res.Katakana() != c.Katakana || res.Romaji() != c.Romaji {
			rec := res.Record()
			report.Mismatches = append(report.Mismatches, Mismatch{Conversion: c, Got: &rec})
			s.logger.Warn("replay mismatch", "id", c.ID, "number", c.Number)
		}
	}

	return report, nil
}
