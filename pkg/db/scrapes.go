package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scrape records one fetch of the company list.
type Scrape struct {
	ScrapeID     string
	SourceURL    string
	PageTitle    string
	ContentHash  string
	CompanyCount int
	FromCache    bool
	CreatedAt    time.Time
}

// RecordScrape stores a scrape run and returns its generated ID.
func (db *DB) RecordScrape(s Scrape) (string, error) {
	if s.ScrapeID == "" {
		s.ScrapeID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(`
		INSERT INTO scrapes (scrape_id, source_url, page_title, content_hash, company_count, from_cache, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ScrapeID, s.SourceURL, s.PageTitle, s.ContentHash, s.CompanyCount, s.FromCache, s.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to record scrape: %w", err)
	}
	return s.ScrapeID, nil
}

// ListScrapes returns scrape runs, most recent first.
func (db *DB) ListScrapes(limit int) ([]Scrape, error) {
	query := `
		SELECT scrape_id, source_url, page_title, content_hash, company_count, from_cache, created_at
		FROM scrapes
		ORDER BY created_at DESC, rowid DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrapes: %w", err)
	}
	defer rows.Close()

	var scrapes []Scrape
	for rows.Next() {
		var s Scrape
		var title sql.NullString
		if err := rows.Scan(&s.ScrapeID, &s.SourceURL, &title, &s.ContentHash,
			&s.CompanyCount, &s.FromCache, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrape: %w", err)
		}
		s.PageTitle = title.String
		scrapes = append(scrapes, s)
	}
	return scrapes, rows.Err()
}
