package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"investtrack/internal/config"
	"investtrack/internal/database"
	_ "investtrack/internal/docs" // Import swagger docs
	"investtrack/internal/logger"
	"investtrack/internal/market"
	"investtrack/internal/news"
	"investtrack/internal/provider"
	"investtrack/internal/scheduler"
	"investtrack/internal/services"
	"investtrack/internal/validator"
)

// @title           InvestTrack API
// @version         1.0
// @description     Market data for the InvestTrack stock dashboard: quotes, charts, symbol search, headlines and a share-count portfolio.

// @host      localhost:8080
// @BasePath  /api

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Portfolio store
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("Closing database failed", "error", err)
		}
	}()
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Market data providers
	httpClient := provider.NewHTTPClient(appConfig.ProviderTimeout)
	yahoo := provider.NewYahooProvider(httpClient,
		provider.WithYahooURLs(appConfig.YahooQuoteURL, appConfig.YahooChartURL, appConfig.YahooSearchURL),
		provider.WithYahooLocation(appConfig.MarketLocation),
	)
	finnhub := provider.NewFinnhubProvider(httpClient, appConfig.FinnhubAPIKey,
		provider.WithFinnhubBaseURL(appConfig.FinnhubBaseURL),
		provider.WithFinnhubRate(appConfig.FinnhubRatePerMinute),
		provider.WithFinnhubLocation(appConfig.MarketLocation),
	)
	if !finnhub.Configured() {
		log.Warn("FINNHUB_API_KEY not set; foreign-listed quotes will use Yahoo Finance only")
	}

	var symbols *market.SymbolTable
	if appConfig.SymbolTableFile != "" {
		if symbols, err = market.LoadSymbolTable(appConfig.SymbolTableFile); err != nil {
			return fmt.Errorf("failed to load symbol table: %w", err)
		}
		log.Infow("Loaded symbol table", "file", appConfig.SymbolTableFile, "entries", symbols.Len())
	}

	// Initialize services
	marketService := market.NewService(finnhub, yahoo, market.Options{
		Timeout:    appConfig.ProviderTimeout,
		QuoteTTL:   appConfig.QuoteTTL,
		ChartTTL:   appConfig.ChartTTL,
		SearchTTL:  appConfig.SearchTTL,
		Classifier: market.NewClassifier(appConfig.DomesticSuffixes),
		Symbols:    symbols,
	})
	newsFetcher := news.NewFetcher(httpClient, appConfig.NewsFeedURL)
	portfolioService := services.NewPortfolioService(dbManager.DB(), marketService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm-cache refresher
	refresher := scheduler.NewRefresher(ctx, marketService, portfolioService)
	unsubscribe := portfolioService.Subscribe(refresher.OnPositionEvent)
	defer unsubscribe()
	if appConfig.RefreshCron != "" {
		if err := refresher.Register(appConfig.RefreshCron); err != nil {
			return err
		}
		refresher.Start()
		defer refresher.Stop()
	} else {
		defer refresher.Wait()
	}

	router := newRouter(appServices{
		market:    marketService,
		news:      newsFetcher,
		portfolio: portfolioService,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting InvestTrack API on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
