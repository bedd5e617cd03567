package setup

import (
	"orgchart/app"
	"orgchart/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Get("/charts", handlers.GetCharts(application))
	api.Post("/charts", handlers.CreateChart(application))
	api.Get("/charts/:id", handlers.GetChart(application))
	api.Delete("/charts/:id", handlers.DeleteChart(application))
	api.Get("/charts/:id/tree", handlers.RenderChart(application))

	employees := api.Group("/charts/:id/employees")
	employees.Post("/", handlers.HireEmployee(application))
	employees.Get("/:eid", handlers.GetEmployee(application))
	employees.Get("/:eid/subordinates", handlers.GetSubordinates(application))
	employees.Post("/:eid/subordinates", handlers.AttachSubordinate(application))
	employees.Get("/:eid/earning-over", handlers.GetEarningOver(application))
	employees.Get("/:eid/same-boss/:other", handlers.GetSameBoss(application))
	employees.Get("/:eid/tree", handlers.RenderEmployee(application))
}
