package app

import (
	"context"
	"io"
	"log/slog"
)

// Source yields the paragraphs of a document in order.
type Source interface {
	Paragraphs(ctx context.Context) ([]string, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	source Source
	config *Config
}

// NewApp is the constructor for the main application. Formatted text goes to
// outW unless the config names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, src Source) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		source: src,
		config: cfg,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
