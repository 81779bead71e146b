package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pageview-analytics/internal/aggregators"
	internalhttp "pageview-analytics/internal/http"
	"pageview-analytics/internal/inspections"
	"pageview-analytics/internal/shared/configs"
	"pageview-analytics/internal/shared/docstores"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/svcerrors"
	"pageview-analytics/internal/stores"
	"pageview-analytics/internal/trendings"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analyticsService aggregators.AnalyticsService
	trendingService  trendings.TrendingService
	inspector        inspections.Inspector
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "pageview-analytics").
		Logger()

	// Initialize document store
	docStore, err := docstores.NewFileStore(config.DocStore.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	// Initialize stores
	pageViewStore := stores.NewPageViewStore(docStore)
	resultStore := stores.NewProcessedResultStore(docStore)
	trendingStore := stores.NewTrendingStore(docStore)

	// Initialize analytics service
	normalizer := aggregators.NewEventNormalizer()
	rangeFilter := aggregators.NewDateRangeFilter(normalizer)
	dailyBucketer := aggregators.NewDailyBucketer()
	rollingCalculator := aggregators.NewRollingCalculator(config.Processing.CalendarRolling)
	analyticsService := aggregators.NewAnalyticsService(
		pageViewStore,
		resultStore,
		rangeFilter,
		dailyBucketer,
		rollingCalculator,
		aggregators.AnalyticsServiceOptions{
			Workers:        config.Processing.Workers,
			CountryTimeout: time.Duration(config.Processing.CountryTimeoutSeconds) * time.Second,
			WriteAudit:     config.Processing.WriteAudit,
		},
	)

	// Initialize trending service
	trendingService := trendings.NewTrendingService(pageViewStore, trendingStore, config.Trending)

	// Initialize inspector
	inspector := inspections.NewInspector(pageViewStore, normalizer, os.Stdout)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		analyticsService,
		trendingService,
		internalhttp.RunDefaults{
			Countries: config.Processing.Countries,
			Days:      config.Processing.WindowDays,
		},
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		analyticsService: analyticsService,
		trendingService:  trendingService,
		inspector:        inspector,
	}, nil
}

// RunAnalytics executes one processing run with the configured countries and
// window, optionally overridden.
func (app *App) RunAnalytics(ctx context.Context, countries []string, days int) *svcerrors.ServiceError {
	if len(countries) == 0 {
		countries = app.config.Processing.Countries
	}
	if days <= 0 {
		days = app.config.Processing.WindowDays
	}

	ctx = app.appLogger.WithContext(ctx)
	_, svcErr := app.analyticsService.Run(ctx, countries, days)
	return svcErr
}

// RunTrending executes one trending refresh across all configured countries.
func (app *App) RunTrending(ctx context.Context) *svcerrors.ServiceError {
	ctx = app.appLogger.WithContext(ctx)
	return app.trendingService.Run(ctx)
}

// Inspector exposes the diagnostic reader for the inspect CLI.
func (app *App) Inspector() inspections.Inspector {
	return app.inspector
}

// Countries returns the configured processing countries.
func (app *App) Countries() []string {
	return app.config.Processing.Countries
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting pageview-analytics service on port %d (log_level=%s, doc_store_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.DocStore.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
