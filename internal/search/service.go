// Package search wires the location classifier, the company list and the
// search history together for the CLI and the MCP server.
package search

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/nlpjobsfinder/jobs-finder/pkg/location"
	"github.com/nlpjobsfinder/jobs-finder/pkg/match"
	searchpkg "github.com/nlpjobsfinder/jobs-finder/pkg/search"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
)

// Service answers location searches against the companies file.
type Service struct {
	cfg     *models.Config
	logger  *slog.Logger
	parser  *location.Parser
	history *db.DB
}

// NewService builds a Service from parts. history may be nil.
func NewService(cfg *models.Config, logger *slog.Logger, parser *location.Parser, history *db.DB) *Service {
	return &Service{cfg: cfg, logger: logger, parser: parser, history: history}
}

// OpenService builds the recognizer named by cfg and opens the history
// database when it is enabled.
func OpenService(cfg *models.Config, logger *slog.Logger) (*Service, error) {
	recognizer, err := common.BuildRecognizer(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewService(cfg, logger, location.NewParser(recognizer), common.OpenHistory(cfg, logger)), nil
}

func (s *Service) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}

// Search loads companiesFile (cfg.CompaniesFile when empty) and returns the
// companies whose location matches query.
func (s *Service) Search(query, companiesFile string) ([]models.SearchResult, error) {
	if companiesFile == "" {
		companiesFile = s.cfg.CompaniesFile
	}

	companies, err := storage.ReadCompanies(companiesFile)
	if err != nil {
		return nil, err
	}

	results, err := searchpkg.ByLocation(companies, query, s.parser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("search complete",
		"query", query,
		"companies", len(companies),
		"matches", len(results))

	if s.history != nil {
		id, err := s.history.RecordSearch(db.Search{
			Query:        strings.ToLower(strings.TrimSpace(query)),
			SourceFile:   companiesFile,
			NERModel:     s.cfg.NERModel,
			CompanyCount: len(companies),
		}, results)
		if err != nil {
			s.logger.Warn("failed to record search history", "error", err)
		} else {
			s.logger.Debug("search recorded", "search_id", id)
		}
	}

	return results, nil
}

// Match reads a location profile from resume text and returns the companies
// in companiesFile (cfg.CompaniesFile when empty) that fit it.
func (s *Service) Match(resumeText, companiesFile string, includeRemote bool) (*match.Result, error) {
	if companiesFile == "" {
		companiesFile = s.cfg.CompaniesFile
	}

	companies, err := storage.ReadCompanies(companiesFile)
	if err != nil {
		return nil, err
	}

	profile, err := match.ExtractProfile(resumeText, s.parser)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume locations: %w", err)
	}
	matched := match.Filter(companies, profile, includeRemote)

	s.logger.Info("match complete",
		"locations", len(profile.Locations),
		"remote_experience", profile.HasRemoteExperience,
		"include_remote", includeRemote,
		"companies", len(companies),
		"matches", len(matched))

	return &match.Result{Profile: profile, Companies: matched}, nil
}

// Parse classifies one location string.
func (s *Service) Parse(text string) (models.Locations, error) {
	return s.parser.Parse(text)
}
