package scrape

import (
	"fmt"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScrapeAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("no-history") {
		disabled := false
		cfg.History = &disabled
	}

	history := common.OpenHistory(cfg, logger)
	if history != nil {
		defer history.Close()
	}

	summary, err := Run(c.Context, cfg, logger, history, Options{
		SourceURL:  c.String("url"),
		Output:     c.String("output"),
		ForceFetch: c.Bool("force-fetch"),
	})
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	yamlBytes, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
