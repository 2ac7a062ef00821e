package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lineage/internal/person"
)

// ErrNotFound is returned when a person id has no stored record.
var ErrNotFound = errors.New("person not found")

// SearchLimit caps how many rows a name search returns.
const SearchLimit = 50

// GetByID loads one person record.
func (s *Store) GetByID(ctx context.Context, id string) (*person.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT payload FROM persons WHERE id = ?", strings.TrimSpace(id))
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return decodeRecord(payload)
}

// SearchByName finds records whose full name contains the query,
// case-insensitively, in insertion order.
func (s *Store) SearchByName(ctx context.Context, query string) ([]*person.Record, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM persons WHERE full_name LIKE ? COLLATE NOCASE ORDER BY created_at, id LIMIT ?",
		pattern, SearchLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}
	defer rows.Close()

	var records []*person.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		record, err := decodeRecord(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return records, nil
}

// Count returns the number of stored person records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM persons").Scan(&count); err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return count, nil
}

// Stats summarizes the collection for the stats command.
type Stats struct {
	Total          int
	ByGender       map[person.Gender]int
	ByVisibility   map[person.Visibility]int
	ByVerification map[person.VerificationLevel]int
}

// CollectStats aggregates record counts by gender, visibility, and
// verification level.
func (s *Store) CollectStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByGender:       make(map[person.Gender]int),
		ByVisibility:   make(map[person.Visibility]int),
		ByVerification: make(map[person.VerificationLevel]int),
	}

	rows, err := s.db.QueryContext(ctx, "SELECT gender, visibility, verification_level FROM persons")
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gender, visibility string
		var level int
		if err := rows.Scan(&gender, &visibility, &level); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		stats.Total++
		stats.ByGender[person.Gender(gender)]++
		stats.ByVisibility[person.Visibility(visibility)]++
		stats.ByVerification[person.VerificationLevel(level)]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}

func decodeRecord(payload string) (*person.Record, error) {
	var record person.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("decode person payload: %w", err)
	}
	return &record, nil
}
