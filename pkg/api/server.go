package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ferrybus/pkg/api/routes"
	"github.com/travigo/ferrybus/pkg/planner"
)

func NewApp(p *planner.Planner) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.FerriesRouter(group.Group("/ferries"), p)
	routes.ScheduleRouter(group.Group("/schedule"), p.Builder)

	return webApp
}

func SetupServer(listen string, p *planner.Planner) error {
	return NewApp(p).Listen(listen)
}
