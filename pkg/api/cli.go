package api

import (
	"github.com/travigo/ferrybus/pkg/connections"
	"github.com/travigo/ferrybus/pkg/dataaggregator/global"
	"github.com/travigo/ferrybus/pkg/planner"
	"github.com/travigo/ferrybus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the ferry board web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML ferry schedule config",
					},
				},
				Action: func(c *cli.Context) error {
					config, err := connections.LoadConfig(c.String("config"))
					if err != nil {
						return err
					}

					builder, err := connections.NewBuilder(config)
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					global.Setup()

					return SetupServer(c.String("listen"), &planner.Planner{Builder: builder})
				},
			},
		},
	}
}
