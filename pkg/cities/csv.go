// Package cities reads, writes and reshapes the world cities datasets.
package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// ErrMissingColumn is returned when a CSV header lacks one of models.CityColumns.
var ErrMissingColumn = errors.New("missing required column")

// ReadCSV parses a city dataset. Columns are matched by header name so extra
// or reordered columns are fine. Empty lat, lng and population cells become nil.
func ReadCSV(r io.Reader) ([]models.City, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range models.CityColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rows []models.City
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		row := models.City{
			City:      get("city"),
			CityASCII: get("city_ascii"),
			Country:   get("country"),
			ISO2:      get("iso2"),
			ISO3:      get("iso3"),
			AdminName: get("admin_name"),
			Capital:   get("capital"),
			ID:        get("id"),
		}
		if row.Lat, err = parseNullableFloat(get("lat")); err != nil {
			return nil, fmt.Errorf("line %d: lat: %w", line, err)
		}
		if row.Lng, err = parseNullableFloat(get("lng")); err != nil {
			return nil, fmt.Errorf("line %d: lng: %w", line, err)
		}
		if row.Population, err = parseNullableFloat(get("population")); err != nil {
			return nil, fmt.Errorf("line %d: population: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes rows with the fixed column order and a header line.
func WriteCSV(w io.Writer, rows []models.City) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(models.CityColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range rows {
		record := []string{
			c.City,
			c.CityASCII,
			formatNullableFloat(c.Lat),
			formatNullableFloat(c.Lng),
			c.Country,
			c.ISO2,
			c.ISO3,
			c.AdminName,
			c.Capital,
			formatNullableFloat(c.Population),
			c.ID,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %s: %w", c.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadFile reads a city dataset from disk.
func ReadFile(path string) ([]models.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cities file: %w", err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// WriteFile writes a city dataset to disk, creating parent directories.
func WriteFile(path string, rows []models.City) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cities file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close() // write error is the one worth reporting
		return err
	}
	return f.Close()
}

func parseNullableFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func formatNullableFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
