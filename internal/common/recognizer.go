package common

import (
	"errors"
	"log/slog"
	"os"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/cities"
	"github.com/nlpjobsfinder/jobs-finder/pkg/ner"
)

// BuildRecognizer returns the NER backend named by cfg.NERModel.
// The gazetteer is seeded from cfg.CitiesFile when that file exists.
func BuildRecognizer(cfg *models.Config, logger *slog.Logger) (ner.Recognizer, error) {
	if cfg.NERModel != models.NERModelGazetteer {
		return ner.NewProseRecognizer(), nil
	}

	rows, err := cities.ReadFile(cfg.CitiesFile)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("cities file not found, gazetteer has countries and states only", "path", cfg.CitiesFile)
	default:
		return nil, err
	}

	g := ner.NewDefaultGazetteer(rows)
	logger.Info("gazetteer loaded", "entries", g.Len(), "cities_file", cfg.CitiesFile)
	return g, nil
}
