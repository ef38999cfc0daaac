package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/config"
	"github.com/zalepa/nbastandings/logger"
)

const confKey = "config"

// Run parses the command line and runs the selected command. Without a
// command the dashboard server starts.
func Run() {
	app := &cli.App{
		Name:        "nbastandings",
		Usage:       "NBA 2021-2022 season standings dashboard",
		Description: "Serves an animated wins-by-week chart of the 2021-2022 NBA season with conference, division and team filters, and renders the same data offline.",
		Before: func(c *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return err
			}
			logger.Configure(conf)
			c.App.Metadata[confKey] = conf
			return nil
		},
		Action: serveAction,
		Commands: []*cli.Command{
			serveCommand(),
			standingsCommand(),
			renderCommand(),
			exportCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

func confFrom(c *cli.Context) *config.Config {
	if conf, ok := c.App.Metadata[confKey].(*config.Config); ok {
		return conf
	}
	return &config.Config{}
}
