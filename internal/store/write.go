package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// WriteConversion appends c to the journal and returns it with its id and
// sequence number filled in. An empty ID is generated.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: writing an id that already
// exists leaves the stored row untouched and returns its sequence number.
func (s *Store) WriteConversion(ctx context.Context, c Conversion) (Conversion, error) {
	if c.ID == "" {
		c.ID = s.ids.Generate()
	}

	euphony := 0
	if c.Euphony {
		euphony = 1
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO conversions
		(id, seq, number, kanji, katakana, romaji, lexicon, romaji_style, euphony)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?, ?, ?
		FROM conversions
		WHERE true
		ON CONFLICT(id) DO NOTHING
		RETURNING seq
	`,
		c.ID,
		strconv.FormatUint(c.Number, 10),
		c.Kanji,
		c.Katakana,
		c.Romaji,
		c.Lexicon,
		c.RomajiStyle,
		euphony,
	).Scan(&c.Seq)

	if errors.Is(err, sql.ErrNoRows) {
		existing, readErr := s.ReadConversion(ctx, c.ID)
		if readErr != nil {
			return Conversion{}, fmt.Errorf("write conversion: %w", readErr)
		}
		return existing, nil
	}
	if err != nil {
		return Conversion{}, fmt.Errorf("write conversion: %w", err)
	}

	s.logger.Debug("conversion journaled", "id", c.ID, "seq", c.Seq, "number", c.Number)
	return c, nil
}
