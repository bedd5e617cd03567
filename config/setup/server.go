package setup

import (
	"errors"
	"log/slog"
	"time"

	"orgchart/config"
	"orgchart/services"
	"orgchart/validator"

	"github.com/gofiber/fiber/v2"
)

// Chart requests carry a handful of small JSON fields.
const maxRequestBody = 64 * 1024

// NewFiberApp creates the org chart HTTP server
func NewFiberApp(logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "orgchart",
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		BodyLimit:             maxRequestBody,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          CustomErrorHandler(logger),
		ReadBufferSize:        8192,
	})
}

// errorStatus maps an error that escaped a handler to a status and the
// message sent to the client. Chart errors get the same answers the
// handlers give them.
func errorStatus(err error) (int, string) {
	var fiberErr *fiber.Error
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, services.ErrChartNotFound):
		return fiber.StatusNotFound, "Chart not found"
	case errors.Is(err, services.ErrManagerNotFound):
		return fiber.StatusNotFound, "Manager not found"
	case errors.Is(err, services.ErrEmployeeNotFound):
		return fiber.StatusNotFound, "Employee not found"
	case errors.Is(err, services.ErrWouldCreateCycle):
		return fiber.StatusConflict, "Attachment would create a reporting cycle"
	case errors.Is(err, services.ErrChartTooLarge):
		return fiber.StatusUnprocessableEntity, "Chart would exceed the maximum number of entries"
	case errors.As(err, &verrs):
		return fiber.StatusBadRequest, verrs.Error()
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

// CustomErrorHandler answers errors returned by handlers and middleware with
// a JSON body carrying the request id. Client errors log at warn level.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := errorStatus(err)

		requestID, _ := c.Locals("requestID").(string)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", code),
			slog.String("error", err.Error()),
		}
		if chartID := c.Params("id"); chartID != "" {
			attrs = append(attrs, slog.String("chart_id", chartID))
		}
		if eid := c.Params("eid"); eid != "" {
			attrs = append(attrs, slog.String("employee_id", eid))
		}

		level := slog.LevelWarn
		if code >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Context(), level, "request failed", attrs...)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
