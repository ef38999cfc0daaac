package cmd

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/zalepa/nbastandings/config"
	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/filter"
	"github.com/zalepa/nbastandings/logger"
	"github.com/zalepa/nbastandings/server"
	"github.com/zalepa/nbastandings/standings"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "start the dashboard server",
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	app := fx.New(serveOptions(confFrom(c))...)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func serveOptions(conf *config.Config) []fx.Option {
	return []fx.Option{
		fx.WithLogger(logger.Fx),
		fx.Supply(conf),
		fx.Provide(provideTable),
		fx.Provide(figure.NewCatalog),
		fx.Provide(provideGraph),
		fx.Provide(server.Create),
		fx.Provide(func(t *standings.Table, c *figure.Catalog, g *filter.Graph) *server.Dashboard {
			return &server.Dashboard{Table: t, Catalog: c, Graph: g}
		}),
		fx.Invoke(func(app *fiber.App, d *server.Dashboard) { d.Register(app) }),
		fx.Invoke(run),
	}
}

func provideTable(conf *config.Config) (*standings.Table, error) {
	path := conf.DataFile()
	table, err := standings.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("evt.name", "standings.load").
		Str("path", path).
		Int("records", table.Len()).
		Ints("weeks", table.Weeks()).
		Msg("standings loaded")
	return table, nil
}

func provideGraph(table *standings.Table, catalog *figure.Catalog) (*filter.Graph, error) {
	return filter.New(table, catalog)
}

func run(app *fiber.App, conf *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.Address)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			log.Info().Str("address", conf.Address).Msg("dashboard listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithTimeout(conf.ShutdownTimeout)
		},
	})
}
