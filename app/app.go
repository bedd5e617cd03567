package app

import (
	"log/slog"

	"orgchart/services"
	"orgchart/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	ChartService *services.ChartService
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies. maxEntries caps the
// entries any chart may list; zero or less selects the service default.
func New(store services.ChartStore, maxEntries int, logger *slog.Logger) *App {
	return &App{
		ChartService: services.NewChartService(store, maxEntries, logger),
		Validator:    validator.New(),
		Logger:       logger,
	}
}
