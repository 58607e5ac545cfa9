// Package cities runs the city dataset transforms behind `jobs-finder cities`.
package cities

import (
	"fmt"
	"io"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
	citiespkg "github.com/nlpjobsfinder/jobs-finder/pkg/cities"
	"github.com/nlpjobsfinder/jobs-finder/pkg/db"
)

const previewRows = 5

// Filter keeps the rows of input whose admin_name is in regions and writes
// them to output. Counts and a preview go to w.
func Filter(input, output string, regions []string, w io.Writer) ([]models.City, error) {
	rows, err := citiespkg.ReadFile(input)
	if err != nil {
		return nil, err
	}

	filtered := citiespkg.FilterByRegion(rows, regions)
	if err := citiespkg.WriteFile(output, filtered); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Original dataset: %d cities\n", len(rows))
	fmt.Fprintf(w, "Filtered dataset (%s): %d cities\n", strings.Join(regions, ", "), len(filtered))
	fmt.Fprintf(w, "\nFirst few cities:\n")
	writePreview(w, filtered)
	return filtered, nil
}

// Remote appends the remote placeholder rows to input and writes output.
func Remote(input, output string, w io.Writer) ([]models.City, error) {
	rows, err := citiespkg.ReadFile(input)
	if err != nil {
		return nil, err
	}

	combined := citiespkg.AppendRemote(rows)
	if err := citiespkg.WriteFile(output, combined); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Original dataset: %d locations\n", len(rows))
	fmt.Fprintf(w, "Added remote options: %d\n", len(combined)-len(rows))
	fmt.Fprintf(w, "Final dataset: %d locations\n", len(combined))
	return combined, nil
}

// Import upserts the rows of input into the history database.
func Import(database *db.DB, input string, w io.Writer) (int, error) {
	rows, err := citiespkg.ReadFile(input)
	if err != nil {
		return 0, err
	}

	n, err := database.UpsertCities(rows)
	if err != nil {
		return 0, err
	}
	total, err := database.CountCities()
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "Imported %d cities from %s (%d stored)\n", n, input, total)
	return n, nil
}

func writePreview(w io.Writer, rows []models.City) {
	fmt.Fprintf(w, "%-24s %-12s %-10s %-10s %-12s\n", "city", "admin_name", "lat", "lng", "population")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for i, c := range rows {
		if i == previewRows {
			break
		}
		fmt.Fprintf(w, "%-24s %-12s %-10s %-10s %-12s\n",
			c.City, c.AdminName, formatFloat(c.Lat), formatFloat(c.Lng), formatFloat(c.Population))
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return fmt.Sprintf("%g", *v)
}
