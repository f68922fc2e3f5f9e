package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/roamplan/roamplan/app/logger"
	"github.com/roamplan/roamplan/app/observability/metrics"
	"github.com/roamplan/roamplan/app/tracer"
	"github.com/roamplan/roamplan/config"
	generativeAI "github.com/roamplan/roamplan/internal/api/generative_ai"
	"github.com/roamplan/roamplan/internal/api/itinerary"
	"github.com/roamplan/roamplan/internal/api/poi"
	api "github.com/roamplan/roamplan/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metricsHandler, err := tracer.InitTracingAndMetrics("RoamPlan")
	if err != nil {
		logger.Error("Failed to initialize telemetry", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Dependency wiring ---
	poiSource, err := poi.NewLocalSource()
	if err != nil {
		logger.Error("Failed to load POI dataset", slog.Any("error", err))
		os.Exit(1)
	}
	builder := poi.NewServiceImpl(poiSource, logger)

	llmClient, err := generativeAI.NewClient(ctx, generativeAI.Options{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		BaseURL:   cfg.LLM.BaseURL,
		APIKeyEnv: cfg.LLM.APIKeyEnv,
	})
	if err != nil {
		if errors.Is(err, generativeAI.ErrNotConfigured) {
			logger.Warn("LLM provider not configured, itineraries will not be AI-enhanced")
			llmClient = nil
		} else {
			logger.Error("Failed to create LLM client", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Info("LLM provider ready", slog.String("provider", llmClient.Name()))
	}

	enricher := itinerary.NewEnricher(llmClient, logger)
	planCache := itinerary.NewPlanCache(cfg.PlanCache.TTL, cfg.PlanCache.Capacity)
	planService := itinerary.NewServiceImpl(builder, nil, enricher, planCache, metrics.Get(), logger)
	planHandler := itinerary.NewHandlerImpl(planService, logger)

	mainRouter := api.SetupRouter(&api.Config{
		ItineraryHandler: planHandler,
		MetricsHandler:   metricsHandler,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Minute, // LLM round-trips can be slow
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	env := os.Getenv("APP_ENV")
	if env == "development" || env == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		return slog.New(tint.NewHandler(os.Stdout, tintOpts))
	}
	jsonOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
}
