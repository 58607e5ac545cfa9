package nerdata

import (
	"fmt"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
	"github.com/urfave/cli/v2"
)

func TokensAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	input := c.String("input")
	if input == "" {
		input = cfg.CitiesFile
	}
	output := c.String("output")

	n, err := WriteTokens(input, output)
	if err != nil {
		return fmt.Errorf("failed to build training data: %w", err)
	}
	logger.Info("NER training data saved", "path", output, "pairs", n)
	return nil
}

func SentencesAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	companiesFile := c.String("companies")
	if companiesFile == "" {
		companiesFile = cfg.CompaniesFile
	}

	text, n, err := RenderSentences(companiesFile)
	if err != nil {
		return fmt.Errorf("failed to build sentences: %w", err)
	}

	if output := c.String("output"); output != "" {
		if err := storage.SaveFile(output, []byte(text)); err != nil {
			return err
		}
		logger.Info("sentences saved", "path", output, "count", n)
		return nil
	}
	fmt.Print(text)
	return nil
}
