// Package scrape fetches the company list page and writes companies.json.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/caching"
	"github.com/nlpjobsfinder/jobs-finder/pkg/classify"
	"github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/nlpjobsfinder/jobs-finder/pkg/fetcher"
	"github.com/nlpjobsfinder/jobs-finder/pkg/langdetect"
	"github.com/nlpjobsfinder/jobs-finder/pkg/mapreduce"
	"github.com/nlpjobsfinder/jobs-finder/pkg/scraper"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
)

const topTermCount = 10

// Options override the configured source and destination for one run.
type Options struct {
	SourceURL  string
	Output     string
	ForceFetch bool
}

// Summary is printed after a scrape.
type Summary struct {
	SourceURL   string           `yaml:"source_url"`
	Output      string           `yaml:"output"`
	Companies   int              `yaml:"companies"`
	FromCache   bool             `yaml:"from_cache"`
	CacheAge    string           `yaml:"cache_age,omitempty"`
	ContentHash string           `yaml:"content_hash"`
	JobTypes    map[string]int   `yaml:"job_types,omitempty"`
	Page        scraper.PageInfo `yaml:"page"`
	Languages   map[string]int   `yaml:"languages,omitempty"`
	TopTerms    []string         `yaml:"top_location_terms,omitempty"`
	ScrapeID    string           `yaml:"scrape_id,omitempty"`
	Duration    string           `yaml:"duration"`
}

// Run fetches (or reads from cache) the source page, extracts and classifies
// the companies and writes them as JSON. history may be nil.
func Run(ctx context.Context, cfg *models.Config, logger *slog.Logger, history *db.DB, opts Options) (*Summary, error) {
	startTime := time.Now()

	rawURL := opts.SourceURL
	if rawURL == "" {
		rawURL = cfg.SourceURL
	}
	sourceURL, err := common.ValidateSourceURL(rawURL)
	if err != nil {
		return nil, err
	}
	output := opts.Output
	if output == "" {
		output = cfg.CompaniesFile
	}

	cache, err := caching.NewPageStore(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}
	if removed, err := cache.Prune(); err != nil {
		logger.Warn("failed to prune page cache", "error", err)
	} else if removed > 0 {
		logger.Debug("pruned page cache", "removed", removed)
	}

	summary := &Summary{SourceURL: sourceURL, Output: output}

	var body []byte
	if opts.ForceFetch {
		if err := cache.Evict(sourceURL); err != nil {
			logger.Warn("failed to evict cached page", "url", sourceURL, "error", err)
		}
	} else if cached, err := cache.Load(sourceURL); err == nil {
		body = cached.Body
		summary.FromCache = true
		summary.CacheAge = cached.Age(time.Now()).Round(time.Second).String()
	} else {
		logger.Debug("page cache miss", "url", sourceURL, "reason", err)
	}

	if summary.FromCache {
		logger.Info("using cached page", "url", sourceURL, "age", summary.CacheAge)
	} else {
		logger.Info("fetching page", "url", sourceURL)
		body, err = fetcher.NewFetcher(cfg.HTTPTimeout).GetHTMLBytes(ctx, sourceURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", sourceURL, err)
		}
		if _, err := cache.Store(sourceURL, body); err != nil {
			logger.Warn("failed to cache page", "url", sourceURL, "error", err)
		}
	}
	summary.ContentHash = common.ContentHash(body)

	doc, err := fetcher.ParseHTML(body)
	if err != nil {
		return nil, err
	}
	companies := classify.Companies(scraper.ParseCompanies(doc))
	summary.Companies = len(companies)
	summary.JobTypes = classify.JobTypeCounts(companies)

	if err := storage.WriteCompanies(output, companies); err != nil {
		return nil, err
	}
	logger.Info("companies written", "path", output, "count", len(companies))

	if info, err := scraper.ExtractPageInfo(body, sourceURL); err != nil {
		logger.Warn("failed to extract page info", "error", err)
	} else {
		summary.Page = info
	}

	locations := make([]string, 0, len(companies))
	descriptions := make([]string, 0, len(companies))
	for _, c := range companies {
		locations = append(locations, c.Location)
		if c.Description != "" {
			descriptions = append(descriptions, c.Description)
		}
	}
	summary.TopTerms = mapreduce.TopTerms(mapreduce.LocationCounts(locations), topTermCount)
	if len(descriptions) > 0 {
		summary.Languages = langdetect.NewDetector().Distribution(descriptions)
	}

	if history != nil {
		id, err := history.RecordScrape(db.Scrape{
			SourceURL:    sourceURL,
			PageTitle:    summary.Page.Title,
			ContentHash:  summary.ContentHash,
			CompanyCount: len(companies),
			FromCache:    summary.FromCache,
		})
		if err != nil {
			logger.Warn("failed to record scrape history", "error", err)
		} else {
			summary.ScrapeID = id
		}
	}

	summary.Duration = time.Since(startTime).Round(time.Millisecond).String()
	return summary, nil
}
