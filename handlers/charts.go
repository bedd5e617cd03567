package handlers

import (
	"orgchart/app"
	"orgchart/models"

	"github.com/gofiber/fiber/v2"
)

// GetCharts lists every chart
func GetCharts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"charts": a.ChartService.ListCharts()})
	}
}

// CreateChart creates a chart together with its root employee
func CreateChart(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateChartRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		chart, err := a.ChartService.CreateChart(req.Name, req.Root)
		if err != nil {
			return serviceError(c, "Failed to create chart", err)
		}

		return created(c, fiber.Map{"chart": chart})
	}
}

// GetChart returns one chart summary
func GetChart(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chart, err := a.ChartService.GetChart(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to fetch chart", err)
		}

		return success(c, fiber.Map{"chart": chart})
	}
}

// DeleteChart drops a chart
func DeleteChart(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.ChartService.DeleteChart(c.Params("id")); err != nil {
			return serviceError(c, "Failed to delete chart", err)
		}

		return success(c, fiber.Map{"message": "Chart deleted successfully"})
	}
}

// RenderChart returns the whole chart as a plain-text tree
func RenderChart(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := a.ChartService.RenderChart(c.Params("id"))
		if err != nil {
			return serviceError(c, "Failed to render chart", err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	}
}
