package db

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	dbpkg "github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/urfave/cli/v2"
)

const timeLayout = "2006-01-02 15:04:05"

// GetSearchIDOrLatest returns the search ID from args, or the latest search if not provided
func GetSearchIDOrLatest(c *cli.Context, database *dbpkg.DB) (string, error) {
	if c.NArg() > 0 {
		id := strings.TrimSpace(c.Args().First())
		if id != "" && id != "latest" {
			return id, nil
		}
	}

	searches, err := database.ListSearches(1)
	if err != nil {
		return "", fmt.Errorf("failed to get latest search: %w", err)
	}
	if len(searches) == 0 {
		return "", fmt.Errorf("no searches found. Run 'jobs-finder search <location>' first")
	}
	return searches[0].SearchID, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// matchKindString colors the padded match kind column.
func matchKindString(kind string) string {
	switch kind {
	case "regex":
		return color.GreenString("%-10s", kind)
	case "classified":
		return color.YellowString("%-10s", kind)
	default:
		return fmt.Sprintf("%-10s", kind)
	}
}

// countString colors zero counts red so empty runs stand out.
func countString(n int) string {
	if n == 0 {
		return color.RedString("%-8d", n)
	}
	return fmt.Sprintf("%-8d", n)
}
