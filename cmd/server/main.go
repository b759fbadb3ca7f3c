package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/plateful/dish-api/internal/config"
	"github.com/plateful/dish-api/internal/handlers"
	"github.com/plateful/dish-api/internal/middleware"
	"github.com/plateful/dish-api/internal/repository"
	"github.com/plateful/dish-api/internal/service"
	"github.com/plateful/dish-api/pkg/logger"
)

func main() {
	// Seed the environment from a local .env file when one exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env file: %v\n", err)
		os.Exit(1)
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel())
	slog.SetDefault(log)

	instanceID := uuid.New().String()

	log.Info("starting dish management api server",
		"title", config.AppTitle,
		"version", config.AppVersion,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"debug", cfg.Debug,
		"instance", instanceID,
	)

	// Initialize repository, service and handlers
	dishRepo := repository.NewInMemoryDishRepository()
	dishService := service.NewDishService(dishRepo)
	dishHandler := handlers.NewDishHandler(dishService, log)
	statusHandler := handlers.NewStatusHandler(instanceID, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: everything is allowed, matching the development-grade
	// deployment this service targets. Lock this down before exposing publicly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Status endpoints
	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)

	// Dish endpoints
	r.Route("/dishes", func(r chi.Router) {
		r.Post("/", dishHandler.CreateDish)
		r.Get("/", dishHandler.ListDishes)
		r.Get("/{dishID}", dishHandler.GetDish)
		r.Put("/{dishID}", dishHandler.UpdateDish)
		r.Patch("/{dishID}", dishHandler.PatchDish)
		r.Delete("/{dishID}", dishHandler.DeleteDish)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
