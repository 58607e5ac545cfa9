package main

import (
	"fmt"
	"os"

	"github.com/nlpjobsfinder/jobs-finder/internal/cities"
	"github.com/nlpjobsfinder/jobs-finder/internal/db"
	"github.com/nlpjobsfinder/jobs-finder/internal/mcpserver"
	"github.com/nlpjobsfinder/jobs-finder/internal/nerdata"
	"github.com/nlpjobsfinder/jobs-finder/internal/scrape"
	"github.com/nlpjobsfinder/jobs-finder/internal/search"
	"github.com/nlpjobsfinder/jobs-finder/models"
	citiespkg "github.com/nlpjobsfinder/jobs-finder/pkg/cities"
	"github.com/nlpjobsfinder/jobs-finder/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "jobs-finder",
		Usage: "Scrape the hiring-without-whiteboards list and search companies by location",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   models.DefaultConfigFile,
				Usage:   "YAML config file (optional)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "Fetch the company list page and write companies.json",
				Action: scrape.ScrapeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "Source page (default from config)"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Companies JSON file (default from config)"},
					&cli.BoolFlag{Name: "force-fetch", Usage: "Ignore the page cache"},
					historyFlag(),
				},
			},
			{
				Name:      "search",
				Usage:     "Print companies whose location matches as a JSON array",
				ArgsUsage: "<location>",
				Action:    search.SearchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "companies", Usage: "Companies JSON file (default from config)"},
					prettyFlag(),
					historyFlag(),
				},
			},
			{
				Name:      "parse",
				Usage:     "Show how a location string is classified",
				ArgsUsage: "<text>",
				Action:    search.ParseAction,
				Flags:     []cli.Flag{prettyFlag()},
			},
			{
				Name:   "match",
				Usage:  "List companies located where a resume's experience section says you worked",
				Action: search.MatchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "resume", Aliases: []string{"r"}, Usage: "Plain text resume file"},
					&cli.StringFlag{Name: "text", Usage: "Resume text instead of a file"},
					&cli.BoolFlag{Name: "include-remote", Usage: "Also list remote companies"},
					&cli.StringFlag{Name: "companies", Usage: "Companies JSON file (default from config)"},
					prettyFlag(),
				},
			},
			{
				Name:  "cities",
				Usage: "Build and import the city datasets",
				Subcommands: []*cli.Command{
					{
						Name:   "filter",
						Usage:  "Keep the cities of the given regions",
						Action: cities.FilterAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "data/worldcities.csv"},
							&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "data/tri_state_cities.csv"},
							&cli.StringSliceFlag{Name: "regions", Value: cli.NewStringSlice(citiespkg.DefaultRegions...), Usage: "admin_name values to keep"},
						},
					},
					{
						Name:   "remote",
						Usage:  "Append the remote work placeholder rows",
						Action: cities.RemoteAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "data/tri_state_cities.csv"},
							&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output CSV (default cities_file from config)"},
						},
					},
					{
						Name:   "import",
						Usage:  "Upsert a city dataset into the history database",
						Action: cities.ImportAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "City CSV (default cities_file from config)"},
						},
					},
				},
			},
			{
				Name:  "ner-data",
				Usage: "Generate NER training material",
				Subcommands: []*cli.Command{
					{
						Name:   "tokens",
						Usage:  "Write BIO-tagged Token,Label rows for a city dataset",
						Action: nerdata.TokensAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "City CSV (default cities_file from config)"},
							&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "data/ner_training_data.csv"},
						},
					},
					{
						Name:   "sentences",
						Usage:  "Render companies as location/description sentences",
						Action: nerdata.SentencesAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "companies", Usage: "Companies JSON file (default from config)"},
							&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write to file instead of stdout"},
						},
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect the history database",
				Subcommands: []*cli.Command{
					{
						Name:   "searches",
						Usage:  "List recorded searches",
						Action: db.SearchesAction,
						Flags:  []cli.Flag{limitFlag()},
					},
					{
						Name:      "search",
						Usage:     "Show one search and its matches (latest when no ID)",
						ArgsUsage: "[search-id]",
						Action:    db.SearchAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "format", Value: "text", Usage: "text or yaml"},
						},
					},
					{
						Name:   "scrapes",
						Usage:  "List recorded scrapes",
						Action: db.ScrapesAction,
						Flags:  []cli.Flag{limitFlag()},
					},
					{
						Name:   "cities",
						Usage:  "List imported cities by population",
						Action: db.CitiesAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "region", Usage: "admin_name to show (all when empty)"},
							limitFlag(),
						},
					},
				},
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML cheat sheet of the commands",
				Action: quickstartAction,
			},
			{
				Name:   "mcp",
				Usage:  "Serve search_by_location, parse_location and match_resume over MCP stdio",
				Action: mcpserver.ServeAction,
			},
		},
	}
}

func quickstartAction(c *cli.Context) error {
	fmt.Print(help.ColdstartYAML)
	return nil
}

// Flag values are per command, so each command gets its own instance.

func historyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-history",
		Usage: "Do not record this run in the history database",
	}
}

func prettyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "pretty",
		Usage: "Indent JSON output",
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Value: 20,
		Usage: "Maximum rows to show (0 for all)",
	}
}
