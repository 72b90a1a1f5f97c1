package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const conversionColumns = `id, seq, number, kanji, katakana, romaji, lexicon, romaji_style, euphony`

// ReadConversion returns the conversion with the given id.
func (s *Store) ReadConversion(ctx context.Context, id string) (Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE id = ?
	`, id)
	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("conversion %s not found: %w", id, err)
	}
	return c, err
}

// ReadConversions returns the most recent limit conversions in journal
// order (ORDER BY seq ASC, id ASC). A limit <= 0 returns every conversion.
//
// Returns an empty slice (not nil) if the journal is empty.
func (s *Store) ReadConversions(ctx context.Context, limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+conversionColumns+` FROM (
			SELECT `+conversionColumns+`
			FROM conversions
			ORDER BY seq DESC, id COLLATE BINARY DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}

	return conversions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (Conversion, error) {
	var (
		c       Conversion
		number  string
		euphony int
	)
	err := row.Scan(&c.ID, &c.Seq, &number, &c.Kanji, &c.Katakana, &c.Romaji, &c.Lexicon, &c.RomajiStyle, &euphony)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversion{}, err
		}
		return Conversion{}, fmt.Errorf("scan conversion: %w", err)
	}

	c.Number, err = strconv.ParseUint(number, 10, 64)
	if err != nil {
		return Conversion{}, fmt.Errorf("conversion %s: corrupt number %q: %w", c.ID, number, err)
	}
	c.Euphony = euphony != 0
	return c, nil
}
