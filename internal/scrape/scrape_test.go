package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><title>Hiring Without Whiteboards</title></head><body>
<article>
<p>Companies that don't do whiteboard interviews.</p>
<ul>
  <li>Acme | Louisville, KY | Take-home project, then a pairing session with the team</li>
  <li>Globex | Remote</li>
  <li>not a company</li>
</ul>
</article>
</body></html>`

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, sourceURL string) *models.Config {
	t.Helper()
	dir := t.TempDir()
	return &models.Config{
		SourceURL:     sourceURL,
		CompaniesFile: filepath.Join(dir, "out", "companies.json"),
		CacheDir:      filepath.Join(dir, "cache"),
		CacheTTL:      time.Hour,
		HTTPTimeout:   5 * time.Second,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRun_WritesCompanies(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cfg := testConfig(t, srv.URL)

	summary, err := Run(context.Background(), cfg, discard, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Companies)
	assert.False(t, summary.FromCache)
	assert.Len(t, summary.ContentHash, 64)
	assert.Equal(t, cfg.CompaniesFile, summary.Output)
	assert.Equal(t, []string{"ky:1", "louisville:1", "remote:1"}, summary.TopTerms)
	assert.Equal(t, map[string]int{models.JobTypeOnSite: 1, models.JobTypeRemote: 1}, summary.JobTypes)
	assert.Empty(t, summary.CacheAge)

	got, err := storage.ReadCompanies(cfg.CompaniesFile)
	require.NoError(t, err)
	assert.Equal(t, []models.Company{
		{
			Name: "Acme", Location: "Louisville, KY", Description: "Take-home project, then a pairing session with the team",
			JobType: models.JobTypeOnSite, Region: models.RegionUnknown, IsKentucky: true,
		},
		{
			Name: "Globex", Location: "Remote", Description: "",
			JobType: models.JobTypeRemote, Region: models.RegionUnknown, IsRemote: true,
		},
	}, got)
}

func TestRun_UsesCache(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cfg := testConfig(t, srv.URL)

	_, err := Run(context.Background(), cfg, discard, nil, Options{})
	require.NoError(t, err)

	summary, err := Run(context.Background(), cfg, discard, nil, Options{})
	require.NoError(t, err)
	assert.True(t, summary.FromCache)
	assert.NotEmpty(t, summary.CacheAge)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	summary, err = Run(context.Background(), cfg, discard, nil, Options{ForceFetch: true})
	require.NoError(t, err)
	assert.False(t, summary.FromCache)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestRun_ExpiredCacheRefetches(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cfg := testConfig(t, srv.URL)
	cfg.CacheTTL = -time.Second

	for i := 0; i < 2; i++ {
		summary, err := Run(context.Background(), cfg, discard, nil, Options{})
		require.NoError(t, err)
		assert.False(t, summary.FromCache)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestRun_OptionsOverrideConfig(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cfg := testConfig(t, "https://example.invalid/list")
	output := filepath.Join(t.TempDir(), "other.json")

	summary, err := Run(context.Background(), cfg, discard, nil, Options{SourceURL: srv.URL, Output: output})
	require.NoError(t, err)
	assert.Equal(t, output, summary.Output)
	assert.FileExists(t, output)
}

func TestRun_RecordsHistory(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	cfg := testConfig(t, srv.URL)

	history, err := db.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	history.SetMaxOpenConns(1)
	defer history.Close()

	summary, err := Run(context.Background(), cfg, discard, history, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, summary.ScrapeID)

	scrapes, err := history.ListScrapes(10)
	require.NoError(t, err)
	require.Len(t, scrapes, 1)
	assert.Equal(t, summary.ScrapeID, scrapes[0].ScrapeID)
	assert.Equal(t, srv.URL, scrapes[0].SourceURL)
	assert.Equal(t, 2, scrapes[0].CompanyCount)
}

func TestRun_Errors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer failing.Close()

	tests := []struct {
		name string
		url  string
	}{
		{name: "bad url", url: "ftp://example.com"},
		{name: "non-200", url: failing.URL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.url)
			_, err := Run(context.Background(), cfg, discard, nil, Options{})
			assert.Error(t, err)
		})
	}
}
