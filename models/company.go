package models

// Company is one entry scraped from the source list. The classification
// fields are filled in by scrape and are absent from unclassified files.
type Company struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	JobType     string `json:"jobType,omitempty"`
	Region      string `json:"region,omitempty"`
	IsRemote    bool   `json:"isRemote,omitempty"`
	IsKentucky  bool   `json:"isKentucky,omitempty"`
}

// Job types assigned by classification.
const (
	JobTypeRemote = "Remote"
	JobTypeHybrid = "Hybrid"
	JobTypeOnSite = "On-site"
)

// Regions assigned by classification.
const (
	RegionUSA     = "USA"
	RegionUK      = "UK"
	RegionUnknown = "Unknown"
)

// Classification is the work arrangement and region derived from a
// company's description and location.
type Classification struct {
	JobType    string `json:"jobType"`
	Region     string `json:"region"`
	IsRemote   bool   `json:"isRemote"`
	IsKentucky bool   `json:"isKentucky"`
}

// Match kinds recorded for a search hit.
const (
	MatchKindRegex      = "regex"
	MatchKindClassified = "classified"
)

// SearchResult is a company returned by a location search.
// MatchKind is kept out of the JSON output and only lands in the history DB.
type SearchResult struct {
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	MatchKind   string `json:"-"`
}

// NewSearchResult converts a matched company into its output shape.
func NewSearchResult(c Company, kind string) SearchResult {
	return SearchResult{
		Company:     c.Name,
		Location:    c.Location,
		Description: c.Description,
		MatchKind:   kind,
	}
}
