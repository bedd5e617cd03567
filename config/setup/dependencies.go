package setup

import (
	"fmt"
	"log/slog"

	"orgchart/app"
	"orgchart/services"
	"orgchart/store"
)

// InitApp initializes the application with all dependencies and loads the
// seed file when one is configured
func InitApp(seedPath string, maxEntries int, logger *slog.Logger) (*app.App, error) {
	chartStore := store.NewMemoryStore()
	logger.Info("chart store initialized in memory", "max_chart_entries", maxEntries)

	application := app.New(chartStore, maxEntries, logger)

	if seedPath != "" {
		seed, err := services.LoadSeed(seedPath)
		if err != nil {
			return nil, err
		}
		charts, err := application.ChartService.ImportSeed(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to import seed %s: %w", seedPath, err)
		}
		logger.Info("seed loaded", "path", seedPath, "charts", len(charts))
	}

	logger.Info("application initialized with dependency injection")
	return application, nil
}
