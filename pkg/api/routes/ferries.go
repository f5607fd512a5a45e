package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source/transportrest"
	"github.com/travigo/ferrybus/pkg/planner"
)

const RejectedJourneysHeader = "X-Rejected-Journeys"

func FerriesRouter(router fiber.Router, p *planner.Planner) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getFerryBoard(c, p)
	})
}

func getFerryBoard(c *fiber.Ctx, p *planner.Planner) error {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters from and to are required",
		})
	}

	count, err := strconv.Atoi(c.Query("count", strconv.Itoa(transportrest.DefaultJourneyCount)))
	if err != nil || count <= 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be a positive integer",
		})
	}

	var departureTime time.Time
	if datetimeString := c.Query("datetime"); datetimeString == "" {
		departureTime = time.Now()
	} else {
		departureTime, err = time.Parse(time.RFC3339, datetimeString)

		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter datetime should be an RFC3339 datetime",
			})
		}
	}

	if in := c.Query("in"); in != "" {
		offset, err := iso8601.ParseISO8601(in)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter in should be an ISO8601 duration",
			})
		}

		departureTime = offset.Shift(departureTime)
	}

	result, err := p.Plan(planner.Request{
		From:          from,
		To:            to,
		DepartureTime: departureTime,
		Count:         count,
	})

	var resolutionError *source.ResolutionError
	var sourceError *source.SourceError

	switch {
	case err == nil:
	case errors.As(err, &resolutionError):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": resolutionError.Error(),
		})
	case errors.As(err, &sourceError):
		log.Error().Err(err).Msg("Journey source failed")

		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": sourceError.Error(),
		})
	default:
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(RejectedJourneysHeader, strconv.Itoa(len(result.Board.Rejected)))

	var ferries []*ctdf.FerryBoard
	if c.QueryBool("only_served") {
		ferries = result.Board.Served()
	} else {
		ferries = result.Board.Ferries
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = []string{"detailed"}
	}

	ferriesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, ferries)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce ferries",
		})
	}

	return c.JSON(ferriesReduced)
}
