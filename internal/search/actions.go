package search

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/urfave/cli/v2"
)

// SearchAction prints the companies matching the location argument as a
// JSON array on stdout.
func SearchAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() == 0 {
		return fmt.Errorf("missing location argument, usage: jobs-finder search <location>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("no-history") {
		disabled := false
		cfg.History = &disabled
	}

	svc, err := OpenService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize search: %w", err)
	}
	defer svc.Close()

	results, err := svc.Search(query, c.String("companies"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return writeJSON(os.Stdout, results, c.Bool("pretty"))
}

// ParseAction prints how the classifier splits the text argument.
func ParseAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	if c.NArg() == 0 {
		return fmt.Errorf("missing text argument, usage: jobs-finder parse <text>")
	}
	text := strings.Join(c.Args().Slice(), " ")

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	disabled := false
	cfg.History = &disabled

	svc, err := OpenService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize parser: %w", err)
	}
	defer svc.Close()

	locations, err := svc.Parse(text)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	return writeJSON(os.Stdout, locations, c.Bool("pretty"))
}

// MatchAction prints the resume's location profile and the companies that
// fit it as JSON.
func MatchAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	text := c.String("text")
	if path := c.String("resume"); path != "" {
		if text != "" {
			return fmt.Errorf("use either --resume or --text, not both")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("missing resume, usage: jobs-finder match --resume <file> | --text <text>")
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	disabled := false
	cfg.History = &disabled

	svc, err := OpenService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize matcher: %w", err)
	}
	defer svc.Close()

	result, err := svc.Match(text, c.String("companies"), c.Bool("include-remote"))
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return writeJSON(os.Stdout, result, c.Bool("pretty"))
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
