package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/matexport/internal/scene"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader scene.Loader
}

// NewApp is the constructor for the main application. Logs go to logW; outW
// receives the document when the destination is standard output.
func NewApp(logW, outW io.Writer, cfg *Config, loader scene.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
