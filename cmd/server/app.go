package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hearthkeep/hearthkeep-api/internal/catalog"
	"github.com/hearthkeep/hearthkeep-api/internal/config"
	"github.com/hearthkeep/hearthkeep-api/internal/domain/schedule"
	"github.com/hearthkeep/hearthkeep-api/internal/events"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/postgres"
	"github.com/hearthkeep/hearthkeep-api/internal/service/generation"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	taskStore    store.TaskStore
	profileStore store.ProfileStore
	catalogStore store.CatalogStore

	// Service interfaces
	scheduler         schedule.Service
	generationService generation.GenerationService

	// Event infrastructure
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies
// initialized. The configuration, logger, and database connection must be
// established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.taskStore = postgres.NewPostgresTaskStore(db, cfg.Database.TaskKeySupported)
	app.profileStore = postgres.NewPostgresProfileStore(db)
	app.catalogStore = postgres.NewPostgresCatalogStore(db)

	// Initialize the scheduling service with any configured ramp overrides
	params := schedule.NewParams(schedule.ParamsConfig{
		NearTermDays:         cfg.Ramp.NearTermDays,
		InitialCap:           cfg.Ramp.InitialCap,
		StaggerWeeks:         cfg.Ramp.StaggerWeeks,
		PerDayCap:            cfg.Ramp.PerDayCap,
		OnboardingWindowDays: cfg.Ramp.OnboardingWindowDays,
	})
	var err error
	app.scheduler, err = schedule.NewServiceWithParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduling service: %w", err)
	}

	// Catalog sources, consulted in priority order: stored catalog first,
	// then the optional CSV file, then the built-in templates.
	sources := []generation.CatalogSource{
		catalog.NewStoreSource(app.catalogStore),
		catalog.NewFileSource(cfg.Catalog.CSVPath),
		catalog.NewBuiltinSource(),
	}

	// Event emitter with the audit handler, so each generation run leaves
	// a structured audit record.
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	app.generationService, err = generation.NewGenerationService(generation.Config{
		DB:                   db,
		Tasks:                app.taskStore,
		Profiles:             app.profileStore,
		Sources:              sources,
		Scheduler:            app.scheduler,
		Logger:               logger.With("component", "generation_service"),
		Events:               app.eventEmitter,
		OnboardingWindowDays: params.OnboardingWindowDays,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
