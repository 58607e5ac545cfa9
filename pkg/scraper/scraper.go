// Package scraper turns the hiring list page into company records.
package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/nlpjobsfinder/jobs-finder/models"
)

// ParseCompanies reads every <li> of the form "name | location | description".
// Items with fewer than two pipe-separated parts are skipped. Extra parts are
// rejoined into the description.
func ParseCompanies(doc *goquery.Document) []models.Company {
	companies := []models.Company{}
	doc.Find("li").Each(func(i int, s *goquery.Selection) {
		if c, ok := parseItem(s.Text()); ok {
			companies = append(companies, c)
		}
	})
	return companies
}

func parseItem(text string) (models.Company, bool) {
	parts := strings.Split(strings.TrimSpace(text), "|")
	if len(parts) < 2 {
		return models.Company{}, false
	}
	c := models.Company{
		Name:     strings.TrimSpace(parts[0]),
		Location: strings.TrimSpace(parts[1]),
	}
	if len(parts) > 2 {
		c.Description = strings.TrimSpace(strings.Join(parts[2:], " | "))
	}
	return c, true
}

// PageInfo is what the run summary reports about the source page.
type PageInfo struct {
	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
}

// ExtractPageInfo runs readability over the raw page to get a clean title and
// excerpt.
func ExtractPageInfo(html []byte, rawURL string) (PageInfo, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return PageInfo{}, fmt.Errorf("invalid page URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return PageInfo{}, fmt.Errorf("readability failed: %w", err)
	}
	return PageInfo{
		Title:   strings.Join(strings.Fields(article.Title), " "),
		Excerpt: strings.Join(strings.Fields(article.Excerpt), " "),
	}, nil
}
