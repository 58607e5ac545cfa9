// Package storage reads and writes the companies JSON file.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// SaveFile writes content to filePath, creating parent directories.
func SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadCompanies loads a JSON array of companies.
func ReadCompanies(filePath string) ([]models.Company, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading companies file: %w", err)
	}
	var companies []models.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filePath, err)
	}
	return companies, nil
}

// WriteCompanies saves companies as an indented JSON array.
func WriteCompanies(filePath string, companies []models.Company) error {
	if companies == nil {
		companies = []models.Company{}
	}
	data, err := json.MarshalIndent(companies, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding companies: %w", err)
	}
	return SaveFile(filePath, append(data, '\n'))
}
