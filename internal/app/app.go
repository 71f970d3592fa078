package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	converter  config.Converter
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, the loaded manifest
// model, and a validated plugin catalog.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Plugin registration already happened during package initialization;
	// here we only load the declarative side.
	model, converter, err := loader.Load(ctx, appConfig.ModulesPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load plugin manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.", "plugins", len(model.Plugins))

	// Validate the integrity of manifests against the live catalog.
	if err := validateParity(ctx, model, registry.Snapshot()); err != nil {
		// A mismatch between code and manifests is a programmer error.
		panic(err)
	}
	logger.Debug("Catalog validation passed.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    appConfig,
		model:     model,
		converter: converter,
	}
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
