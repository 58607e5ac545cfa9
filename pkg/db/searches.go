package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nlpjobsfinder/jobs-finder/models"
)

// ErrSearchNotFound is returned by GetSearch for an unknown ID.
var ErrSearchNotFound = errors.New("search not found")

// ErrAmbiguousSearchID is returned by GetSearch when a prefix matches more
// than one search.
var ErrAmbiguousSearchID = errors.New("search ID prefix is ambiguous")

// Search is one recorded location query.
type Search struct {
	SearchID     string
	Query        string
	SourceFile   string
	NERModel     string
	CompanyCount int
	MatchCount   int
	CreatedAt    time.Time
}

// SearchMatch is one entry of a recorded result list.
type SearchMatch struct {
	Position  int
	Company   string
	Location  string
	MatchKind string
}

// RecordSearch stores a search and its ordered results in one transaction.
func (db *DB) RecordSearch(s Search, results []models.SearchResult) (string, error) {
	if s.SearchID == "" {
		s.SearchID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.MatchCount = len(results)

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	_, err = tx.Exec(`
		INSERT INTO searches (search_id, query, source_file, ner_model, company_count, match_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.SearchID, s.Query, s.SourceFile, s.NERModel, s.CompanyCount, s.MatchCount, s.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to record search: %w", err)
	}

	for i, r := range results {
		_, err = tx.Exec(`
			INSERT INTO search_matches (search_id, position, company, location, match_kind)
			VALUES (?, ?, ?, ?, ?)
		`, s.SearchID, i+1, r.Company, r.Location, r.MatchKind)
		if err != nil {
			return "", fmt.Errorf("failed to record match %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit search: %w", err)
	}
	return s.SearchID, nil
}

const searchColumns = `search_id, query, source_file, ner_model, company_count, match_count, created_at`

func scanSearch(scan func(dest ...any) error) (Search, error) {
	var s Search
	var source, model sql.NullString
	err := scan(&s.SearchID, &s.Query, &source, &model, &s.CompanyCount, &s.MatchCount, &s.CreatedAt)
	s.SourceFile = source.String
	s.NERModel = model.String
	return s, err
}

// ListSearches returns searches, most recent first.
func (db *DB) ListSearches(limit int) ([]Search, error) {
	query := `SELECT ` + searchColumns + ` FROM searches ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		s, err := scanSearch(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// GetSearch returns a single search by full ID or unique ID prefix, such as
// the 8 character IDs the searches listing prints.
func (db *DB) GetSearch(searchID string) (*Search, error) {
	if searchID == "" {
		return nil, fmt.Errorf("%w: empty ID", ErrSearchNotFound)
	}
	rows, err := db.Query(`SELECT `+searchColumns+` FROM searches
		WHERE substr(search_id, 1, ?) = ?
		ORDER BY search_id = ? DESC
		LIMIT 2`, len(searchID), searchID, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get search: %w", err)
	}
	defer rows.Close()

	var found []Search
	for rows.Next() {
		s, err := scanSearch(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get search: %w", err)
	}

	switch {
	case len(found) == 0:
		return nil, fmt.Errorf("%w: %s", ErrSearchNotFound, searchID)
	case found[0].SearchID == searchID, len(found) == 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousSearchID, searchID)
	}
}

// GetSearchMatches returns a search's results in output order.
func (db *DB) GetSearchMatches(searchID string) ([]SearchMatch, error) {
	rows, err := db.Query(`
		SELECT position, company, location, match_kind
		FROM search_matches
		WHERE search_id = ?
		ORDER BY position
	`, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get search matches: %w", err)
	}
	defer rows.Close()

	var matches []SearchMatch
	for rows.Next() {
		var m SearchMatch
		var loc sql.NullString
		if err := rows.Scan(&m.Position, &m.Company, &loc, &m.MatchKind); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Location = loc.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
