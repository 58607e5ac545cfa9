// Package models defines the records, search results and configuration
// shared by the jobs-finder commands.
package models

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given. It is optional.
const DefaultConfigFile = "jobs-finder.yaml"

// NER model names accepted by Config.NERModel.
const (
	NERModelProse     = "prose"
	NERModelGazetteer = "gazetteer"
)

// Config holds runtime configuration for every command.
// Values are resolved as: YAML file, then JOBSFINDER_* env vars, then defaults.
type Config struct {
	SourceURL     string        `yaml:"source_url"`
	CompaniesFile string        `yaml:"companies_file"`
	CitiesFile    string        `yaml:"cities_file"`
	DBPath        string        `yaml:"db_path"`
	CacheDir      string        `yaml:"cache_dir"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	NERModel      string        `yaml:"ner_model"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	History       *bool         `yaml:"history"`
}

// HistoryEnabled reports whether runs should be recorded in the SQLite history.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// LoadConfig reads the YAML file at path (a missing file is fine), applies
// env overrides and fills defaults.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("JOBSFINDER_SOURCE_URL"); v != "" {
		c.SourceURL = v
	}
	if v := os.Getenv("JOBSFINDER_COMPANIES_FILE"); v != "" {
		c.CompaniesFile = v
	}
	if v := os.Getenv("JOBSFINDER_CITIES_FILE"); v != "" {
		c.CitiesFile = v
	}
	if v := os.Getenv("JOBSFINDER_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("JOBSFINDER_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("JOBSFINDER_NER_MODEL"); v != "" {
		c.NERModel = v
	}
	if v := os.Getenv("JOBSFINDER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JOBSFINDER_CACHE_TTL: %w", err)
		}
		c.CacheTTL = d
	}
	if v := os.Getenv("JOBSFINDER_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JOBSFINDER_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("JOBSFINDER_HISTORY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid JOBSFINDER_HISTORY: %w", err)
		}
		c.History = &b
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.SourceURL == "" {
		c.SourceURL = "https://github.com/poteto/hiring-without-whiteboards"
	}
	if c.CompaniesFile == "" {
		c.CompaniesFile = "data/companies.json"
	}
	if c.CitiesFile == "" {
		c.CitiesFile = "data/tri_state_cities_with_remote.csv"
	}
	if c.DBPath == "" {
		c.DBPath = "data/jobs-finder.db"
	}
	if c.CacheDir == "" {
		c.CacheDir = ".cache/jobs-finder"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 24 * time.Hour
	}
	if c.NERModel == "" {
		c.NERModel = NERModelProse
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 30 * time.Second
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch strings.ToLower(c.NERModel) {
	case NERModelProse, NERModelGazetteer:
		c.NERModel = strings.ToLower(c.NERModel)
	default:
		return fmt.Errorf("unknown ner_model %q (want %q or %q)", c.NERModel, NERModelProse, NERModelGazetteer)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}
