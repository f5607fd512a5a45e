package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ferrybus/pkg/connections"
)

func ScheduleRouter(router fiber.Router, builder *connections.Builder) {
	router.Get("/", func(c *fiber.Ctx) error {
		departures := []string{}
		for _, departure := range builder.Matcher.Schedule {
			departures = append(departures, departure.String())
		}

		return c.JSON(departures)
	})
}
