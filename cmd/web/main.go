package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/cladding-site/internal/config"
	"github.com/octobees/cladding-site/internal/database"
	"github.com/octobees/cladding-site/internal/handler"
	"github.com/octobees/cladding-site/internal/logging"
	middlewarepkg "github.com/octobees/cladding-site/internal/middleware"
	"github.com/octobees/cladding-site/internal/repository"
	"github.com/octobees/cladding-site/internal/router"
	"github.com/octobees/cladding-site/internal/service"
	"github.com/octobees/cladding-site/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("failed to apply schema", zap.Error(err))
		}
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	productsRepo := repository.NewPGXProductsRepository(pool)
	testimonialsRepo := repository.NewPGXTestimonialsRepository(pool)
	contactsRepo := repository.NewPGXContactsRepository(pool)

	catalogService := service.NewCatalogService(productsRepo)
	siteService := service.NewSiteService(productsRepo, testimonialsRepo)
	contactService := service.NewContactService(contactsRepo,
		service.WithLogger(logger),
		service.WithPhoneRegion(cfg.PhoneRegion),
	)

	reporter := handler.NewErrorReporter(logger, cfg.ExposeErrorDetails)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = reporter.HTTPErrorHandler

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Pages:    handler.NewPagesHandler(siteService, reporter),
		Products: handler.NewProductsHandler(catalogService, reporter),
		Contact:  handler.NewContactHandler(contactService, reporter),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
