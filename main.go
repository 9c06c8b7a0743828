package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"storefront/catalog"
	"storefront/config"
	"storefront/database"
	"storefront/logging"
	"storefront/routes"
	"storefront/store"
	"storefront/views"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	cfg := config.AppConfig

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if !cfg.EnvFile {
		logger.Info("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pick the product source
	var source catalog.Source = catalog.StaticSource{}
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database unavailable", zap.Error(err))
		}
		defer database.Close(db)

		if cfg.SeedDatabase {
			if err := database.EnsureSchema(ctx, db); err != nil {
				logger.Fatal("failed to prepare schema", zap.Error(err))
			}
			if err := database.Seed(ctx, db, catalog.Fixture()); err != nil {
				logger.Fatal("failed to seed products", zap.Error(err))
			}
		}
		source = catalog.NewPostgresSource(db)
	}

	var fetcher store.Fetcher = store.SourceFetcher{Source: source}
	if cfg.CatalogURL != "" {
		fetcher = store.HTTPFetcher{URL: cfg.CatalogURL, Timeout: 10 * time.Second}
	}

	container := store.NewContainer(fetcher, cfg.TickInterval)
	defer container.Close()

	renderer, err := views.New()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}

	app := routes.NewApp(routes.Deps{
		Source:    source,
		Container: container,
		Renderer:  renderer,
		Logger:    logger,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("serving storefront", zap.String("addr", cfg.Addr), zap.Duration("tick_interval", cfg.TickInterval))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
