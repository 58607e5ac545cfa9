package cities

import (
	"fmt"
	"os"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/nlpjobsfinder/jobs-finder/pkg/db"
	"github.com/urfave/cli/v2"
)

func FilterAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	filtered, err := Filter(c.String("input"), c.String("output"), c.StringSlice("regions"), os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to filter cities: %w", err)
	}
	logger.Info("cities filtered", "output", c.String("output"), "rows", len(filtered))
	return nil
}

func RemoteAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	output := c.String("output")
	if output == "" {
		output = cfg.CitiesFile
	}

	combined, err := Remote(c.String("input"), output, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to add remote locations: %w", err)
	}
	logger.Info("remote locations added", "output", output, "rows", len(combined))
	return nil
}

func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	input := c.String("input")
	if input == "" {
		input = cfg.CitiesFile
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	n, err := Import(database, input, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to import cities: %w", err)
	}
	logger.Info("cities imported", "input", input, "rows", n, "db", database.Path())
	return nil
}
