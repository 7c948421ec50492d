package feeds

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "feeds",
		Usage: "Provides feed definition inspection",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the configured agency feeds",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feeds",
						Usage:    "directory of feed definition YAML files",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					definitions, err := LoadDefinitions(c.String("feeds"))
					if err != nil {
						return err
					}

					for _, definition := range definitions {
						log.Info().
							Str("identifier", definition.Identifier).
							Str("name", definition.Name).
							Str("path", definition.Path).
							Bool("railonly", definition.RailOnly).
							Bool("customrailrule", definition.RailRule != "").
							Msg("Feed")
					}

					return nil
				},
			},
		},
	}
}
