// Package caching keeps fetched source pages on disk so repeated scrapes
// within the TTL skip the network.
//
// Each page is two files named after the SHA-256 of its URL: the raw body
// (<key>.html) and a YAML sidecar (<key>.yaml) recording the URL, fetch time
// and body checksum. Freshness comes from the sidecar, not file mtimes.
package caching

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMiss is returned by Load when no usable entry exists for a URL.
	ErrMiss = errors.New("page not cached")
	// ErrExpired is returned by Load when the entry is older than the TTL.
	ErrExpired = errors.New("cached page expired")
)

// Page is a cached source page.
type Page struct {
	URL       string    `yaml:"url"`
	FetchedAt time.Time `yaml:"fetched_at"`
	SHA256    string    `yaml:"sha256"`
	Size      int       `yaml:"size"`
	Body      []byte    `yaml:"-"`
}

// Age is how long ago the page was fetched.
func (p *Page) Age(now time.Time) time.Duration {
	return now.Sub(p.FetchedAt)
}

// PageStore is a directory of cached pages with a shared TTL.
// A TTL of zero or less makes every entry stale.
type PageStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewPageStore creates dir if needed.
func NewPageStore(dir string, ttl time.Duration) (*PageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &PageStore{dir: dir, ttl: ttl, now: time.Now}, nil
}

func checksum(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func (s *PageStore) paths(url string) (body, meta string) {
	key := checksum([]byte(url))
	return filepath.Join(s.dir, key+".html"), filepath.Join(s.dir, key+".yaml")
}

func (s *PageStore) readMeta(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PageStore) fresh(p *Page) bool {
	return s.ttl > 0 && p.Age(s.now()) <= s.ttl
}

// Load returns the cached page for url. It fails with ErrMiss when there is no
// entry or the entry is damaged, and with ErrExpired when it is past the TTL.
func (s *PageStore) Load(url string) (*Page, error) {
	bodyPath, metaPath := s.paths(url)

	p, err := s.readMeta(metaPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	if p.URL != url {
		return nil, fmt.Errorf("%w: entry belongs to %s", ErrMiss, p.URL)
	}
	if !s.fresh(p) {
		return nil, ErrExpired
	}

	body, err := os.ReadFile(bodyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	if checksum(body) != p.SHA256 {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrMiss)
	}
	p.Body = body
	return p, nil
}

// Store saves body as the current page for url. The body is written before
// its sidecar, so a crash between the two leaves an entry Load ignores.
func (s *PageStore) Store(url string, body []byte) (*Page, error) {
	bodyPath, metaPath := s.paths(url)

	p := &Page{
		URL:       url,
		FetchedAt: s.now().UTC(),
		SHA256:    checksum(body),
		Size:      len(body),
		Body:      body,
	}
	meta, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := writeAtomic(bodyPath, body); err != nil {
		return nil, err
	}
	if err := writeAtomic(metaPath, meta); err != nil {
		return nil, err
	}
	return p, nil
}

// Evict removes the entry for url. Evicting a missing entry is not an error.
func (s *PageStore) Evict(url string) error {
	bodyPath, metaPath := s.paths(url)
	for _, path := range []string{metaPath, bodyPath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to evict cache entry: %w", err)
		}
	}
	return nil
}

// Prune deletes expired and unreadable entries and returns how many it removed.
func (s *PageStore) Prune() (int, error) {
	metas, err := filepath.Glob(filepath.Join(s.dir, "*.yaml"))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, metaPath := range metas {
		p, err := s.readMeta(metaPath)
		if err == nil && s.fresh(p) {
			continue
		}
		bodyPath := strings.TrimSuffix(metaPath, ".yaml") + ".html"
		for _, path := range []string{metaPath, bodyPath} {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return removed, fmt.Errorf("failed to prune cache entry: %w", err)
			}
		}
		removed++
	}
	return removed, nil
}

// writeAtomic writes through a temp file in the same directory and renames it
// into place, so readers never see a partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
