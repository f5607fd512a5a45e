package board

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/ferrybus/pkg/archiver"
	"github.com/travigo/ferrybus/pkg/connections"
	"github.com/travigo/ferrybus/pkg/database"
	"github.com/travigo/ferrybus/pkg/dataaggregator/global"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source/transportrest"
	"github.com/travigo/ferrybus/pkg/planner"
	"github.com/travigo/ferrybus/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func newConfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML ferry schedule config",
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Print which ferries the buses between two places connect to",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "origin place name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "destination place name",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "offset",
				Usage: "ISO8601 duration from now to search journeys from, eg. PT1H",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: transportrest.DefaultJourneyCount,
				Usage: "number of journeys to request",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: FormatJSON,
				Usage: "output format, one of json, csv or pretty",
			},
			&cli.BoolFlag{
				Name:  "only-served",
				Usage: "leave out ferries no bus connects to",
			},
			&cli.BoolFlag{
				Name:  "detailed",
				Usage: "include journey times and durations in json output",
			},
			&cli.BoolFlag{
				Name:  "archive",
				Usage: "store the served ferries in MongoDB",
			},
			newConfigFlag(),
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

			departureTime := time.Now()
			if offset := c.String("offset"); offset != "" {
				duration, err := iso8601.ParseISO8601(offset)
				if err != nil {
					return err
				}

				departureTime = duration.Shift(departureTime)
			}

			if err := redis_client.Connect(); err != nil {
				return err
			}

			global.Setup()

			p := &planner.Planner{Builder: builder}
			result, err := p.Plan(planner.Request{
				From:          c.String("from"),
				To:            c.String("to"),
				DepartureTime: departureTime,
				Count:         c.Int("count"),
			})
			if err != nil {
				return err
			}

			if len(result.Board.Rejected) > 0 {
				log.Warn().Int("count", len(result.Board.Rejected)).Msg("Some journeys were rejected")
			}

			if c.Bool("archive") {
				if err := database.Connect(); err != nil {
					return err
				}
				defer database.Disconnect()

				boardArchiver, err := archiver.New()
				if err != nil {
					return err
				}

				if _, err := boardArchiver.Archive(c.Context, result); err != nil {
					return err
				}
			}

			ferries := result.Board.Ferries
			if c.Bool("only-served") {
				ferries = result.Board.Served()
			}

			return Write(os.Stdout, c.String("format"), ferries, c.Bool("detailed"))
		},
	}
}

func RegisterScheduleCLI() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Print the ferry departure schedule",
		Flags: []cli.Flag{
			newConfigFlag(),
		},
		Action: func(c *cli.Context) error {
			config, err := connections.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}

			return WriteSchedule(os.Stdout, connections.GenerateFerrySchedule(config.FerryMinutes))
		},
	}
}
