package handlers

import (
	"math"
	"strconv"

	"orgchart/app"
	"orgchart/models"

	"github.com/gofiber/fiber/v2"
)

// HireEmployee creates an employee, optionally under a manager
func HireEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.HireRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		employee, err := a.ChartService.Hire(c.Params("id"), req.EmployeeInput, req.ManagerID)
		if err != nil {
			return serviceError(c, "Failed to hire employee", err)
		}

		return created(c, fiber.Map{"employee": employee})
	}
}

// GetEmployee returns one employee with its structural counters
func GetEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, err := a.ChartService.Employee(c.Params("id"), c.Params("eid"))
		if err != nil {
			return serviceError(c, "Failed to fetch employee", err)
		}

		return success(c, fiber.Map{"employee": employee})
	}
}

// GetSubordinates lists direct reports, one entry per attachment
func GetSubordinates(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := a.ChartService.Subordinates(c.Params("id"), c.Params("eid"))
		if err != nil {
			return serviceError(c, "Failed to fetch subordinates", err)
		}

		return success(c, fiber.Map{"subordinates": subs})
	}
}

// AttachSubordinate adds an existing employee under the manager in the path
func AttachSubordinate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AttachRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		manager, err := a.ChartService.Attach(c.Params("id"), c.Params("eid"), req.SubordinateID)
		if err != nil {
			return serviceError(c, "Failed to attach subordinate", err)
		}

		return success(c, fiber.Map{"employee": manager})
	}
}

// GetEarningOver lists the subtree members paid strictly more than ?amount
func GetEarningOver(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("amount")
		if raw == "" {
			return badRequest(c, "amount is required")
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(amount) {
			return badRequest(c, "amount must be a number")
		}

		employees, err := a.ChartService.EarningOver(c.Params("id"), c.Params("eid"), amount)
		if err != nil {
			return serviceError(c, "Failed to search employees", err)
		}

		return success(c, fiber.Map{"employees": employees})
	}
}

// GetSameBoss reports whether two employees share a direct manager
func GetSameBoss(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		same, err := a.ChartService.SameBoss(c.Params("id"), c.Params("eid"), c.Params("other"))
		if err != nil {
			return serviceError(c, "Failed to compare managers", err)
		}

		return success(c, fiber.Map{"same_boss": same})
	}
}

// RenderEmployee returns the subtree of one employee as a plain-text tree
func RenderEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := a.ChartService.RenderEmployee(c.Params("id"), c.Params("eid"))
		if err != nil {
			return serviceError(c, "Failed to render employee", err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	}
}
