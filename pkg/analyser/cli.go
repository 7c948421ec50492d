package analyser

import (
	"github.com/rs/zerolog/log"
	"github.com/transitzone/transitzone/pkg/config"
	"github.com/transitzone/transitzone/pkg/feeds"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "analyse",
		Usage: "Runs the transit hub qualification pipeline",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "classify hubs, build coverage geometry, report areas",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "analysis configuration YAML",
					},
					&cli.StringFlag{
						Name:     "feeds",
						Usage:    "directory of feed definition YAML files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "data",
						Value: "data/feeds",
						Usage: "root directory the feed paths are relative to",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "output",
						Usage: "directory the GeoJSON results are written to",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Default()
					if c.String("config") != "" {
						var err error
						cfg, err = config.Load(c.String("config"))
						if err != nil {
							return err
						}
					}

					definitions, err := feeds.LoadDefinitions(c.String("feeds"))
					if err != nil {
						return err
					}

					source := feeds.DirectorySource{Root: c.String("data")}

					results, err := Run(cfg, source, definitions)
					if err != nil {
						return err
					}

					log.Info().
						Int("hubs", results.HubStats.Total).
						Int("rail", results.HubStats.Kinds["rail"]).
						Int("bushubs", results.HubStats.Kinds["bus_hub"]).
						Int("corridors", len(results.Corridors)).
						Float64("squaremiles", results.AreaStats.OverallSquareMiles).
						Msg("Analysis complete")

					for name, percent := range results.AreaStats.ReferencePercents {
						log.Info().
							Str("region", name).
							Float64("percent", percent).
							Msg("Reference region coverage")
					}

					return results.WriteGeoJSON(c.String("output"))
				},
			},
		},
	}
}
