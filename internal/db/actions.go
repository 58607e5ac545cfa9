package db

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	dbpkg "github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// openDatabase opens the configured history database.
func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func SearchesAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	searches, err := database.ListSearches(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list searches: %w", err)
	}
	PrintSearches(os.Stdout, searches)
	return nil
}

// PrintSearches writes the search history as a table.
func PrintSearches(w io.Writer, searches []dbpkg.Search) {
	if len(searches) == 0 {
		fmt.Fprintln(w, "No searches found")
		return
	}

	fmt.Fprintf(w, "%-10s %-20s %-24s %-8s %-8s %-10s\n",
		"ID", "Created", "Query", "Total", "Matches", "Model")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, s := range searches {
		fmt.Fprintf(w, "%-10s %-20s %-24s %-8d %s %-10s\n",
			shortID(s.SearchID),
			s.CreatedAt.Local().Format(timeLayout),
			truncate(s.Query, 24),
			s.CompanyCount,
			countString(s.MatchCount),
			s.NERModel,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d searches\n", len(searches))
	fmt.Fprintf(w, "\nTip: Use 'jobs-finder db search <id>' to see the matches\n")
}

// searchView is the YAML shape of one recorded search.
type searchView struct {
	SearchID     string      `yaml:"search_id"`
	Query        string      `yaml:"query"`
	SourceFile   string      `yaml:"source_file"`
	NERModel     string      `yaml:"ner_model"`
	CompanyCount int         `yaml:"company_count"`
	MatchCount   int         `yaml:"match_count"`
	CreatedAt    string      `yaml:"created_at"`
	Matches      []matchView `yaml:"matches"`
}

type matchView struct {
	Company   string `yaml:"company"`
	Location  string `yaml:"location"`
	MatchKind string `yaml:"match_kind"`
}

// SearchAction shows one search, the latest when no ID is given.
func SearchAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	searchID, err := GetSearchIDOrLatest(c, database)
	if err != nil {
		return err
	}

	search, err := database.GetSearch(searchID)
	if errors.Is(err, dbpkg.ErrSearchNotFound) {
		return fmt.Errorf("search %s not found. Use 'jobs-finder db searches' to list IDs", searchID)
	}
	if errors.Is(err, dbpkg.ErrAmbiguousSearchID) {
		return fmt.Errorf("search ID %s matches several searches. Use more characters", searchID)
	}
	if err != nil {
		return err
	}
	matches, err := database.GetSearchMatches(search.SearchID)
	if err != nil {
		return err
	}

	if strings.ToLower(c.String("format")) == "yaml" {
		return PrintSearchYAML(os.Stdout, search, matches)
	}
	PrintSearch(os.Stdout, search, matches)
	return nil
}

// PrintSearch writes a search and its matches as text.
func PrintSearch(w io.Writer, s *dbpkg.Search, matches []dbpkg.SearchMatch) {
	fmt.Fprintf(w, "Search %s\n", s.SearchID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:     %s\n", s.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Query:       %s\n", s.Query)
	fmt.Fprintf(w, "Source:      %s\n", s.SourceFile)
	fmt.Fprintf(w, "NER model:   %s\n", s.NERModel)
	fmt.Fprintf(w, "Companies:   %d scanned, %d matched\n", s.CompanyCount, s.MatchCount)

	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(w, "\nMatches (%d):\n", len(matches))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, m := range matches {
		fmt.Fprintf(w, "%3d. %s %-24s %s\n", m.Position, matchKindString(m.MatchKind), truncate(m.Company, 24), m.Location)
	}
}

// PrintSearchYAML writes a search and its matches as YAML.
func PrintSearchYAML(w io.Writer, s *dbpkg.Search, matches []dbpkg.SearchMatch) error {
	view := searchView{
		SearchID:     s.SearchID,
		Query:        s.Query,
		SourceFile:   s.SourceFile,
		NERModel:     s.NERModel,
		CompanyCount: s.CompanyCount,
		MatchCount:   s.MatchCount,
		CreatedAt:    s.CreatedAt.UTC().Format(timeLayout),
		Matches:      make([]matchView, 0, len(matches)),
	}
	for _, m := range matches {
		view.Matches = append(view.Matches, matchView{Company: m.Company, Location: m.Location, MatchKind: m.MatchKind})
	}

	yamlBytes, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal search: %w", err)
	}
	_, err = w.Write(yamlBytes)
	return err
}

func ScrapesAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	scrapes, err := database.ListScrapes(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list scrapes: %w", err)
	}
	PrintScrapes(os.Stdout, scrapes)
	return nil
}

// PrintScrapes writes the scrape history as a table.
func PrintScrapes(w io.Writer, scrapes []dbpkg.Scrape) {
	if len(scrapes) == 0 {
		fmt.Fprintln(w, "No scrapes found")
		return
	}

	fmt.Fprintf(w, "%-10s %-20s %-8s %-6s %-14s %s\n",
		"ID", "Created", "Count", "Cache", "Hash", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, s := range scrapes {
		cached := "no"
		if s.FromCache {
			cached = "yes"
		}
		fmt.Fprintf(w, "%-10s %-20s %s %-6s %-14s %s\n",
			shortID(s.ScrapeID),
			s.CreatedAt.Local().Format(timeLayout),
			countString(s.CompanyCount),
			cached,
			truncate(s.ContentHash, 14),
			s.SourceURL,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d scrapes\n", len(scrapes))
}

func CitiesAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stored, err := database.ListCitiesByRegion(c.String("region"), c.Int("limit"))
	if err != nil {
		return err
	}
	total, err := database.CountCities()
	if err != nil {
		return err
	}
	PrintCities(os.Stdout, stored, total)
	return nil
}

// PrintCities writes stored cities as a table.
func PrintCities(w io.Writer, stored []dbpkg.StoredCity, total int) {
	if len(stored) == 0 {
		fmt.Fprintln(w, "No cities found. Run 'jobs-finder cities import' first")
		return
	}

	fmt.Fprintf(w, "%-12s %-24s %-14s %-12s %-10s\n", "ID", "City", "Region", "Population", "Geohash")
	fmt.Fprintln(w, strings.Repeat("-", 76))

	for _, sc := range stored {
		population := "-"
		if sc.Population != nil {
			population = fmt.Sprintf("%.0f", *sc.Population)
		}
		geohash := sc.Geohash
		if geohash == "" {
			geohash = "-"
		}
		fmt.Fprintf(w, "%-12s %-24s %-14s %-12s %-10s\n",
			sc.ID, truncate(sc.City.City, 24), truncate(sc.AdminName, 14), population, geohash)
	}

	fmt.Fprintf(w, "\nShowing %d of %d stored cities\n", len(stored), total)
}
