// Scotty — portfolio site server with the Ask Scotty chat gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/lilswapnil/scotty/internal/api"
	"github.com/lilswapnil/scotty/internal/config"
	"github.com/lilswapnil/scotty/internal/gateway"
	"github.com/lilswapnil/scotty/internal/llm"
	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/middleware"
	"github.com/lilswapnil/scotty/internal/persona"
	"github.com/lilswapnil/scotty/internal/store"
	"github.com/lilswapnil/scotty/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.L.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	repo, err := store.NewSQLite(cfg.DB.Path)
	if err != nil {
		logger.L.Error("failed to initialize contact store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.L.Error("failed to close contact store", "error", closeErr)
		}
	}()

	llmClient := llm.NewClient(cfg.LLM)
	gw := gateway.New(llmClient, cfg.LLM)
	handler := api.NewHandler(gw, persona.Instruction(cfg.Persona), repo)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Post("/askscotty", handler.AskScotty)
		r.Get("/projects", handler.Projects)
		r.Get("/skills", handler.Skills)
		r.Get("/credentials", handler.Credentials)
		r.Get("/experience", handler.Experience)
		r.Post("/contact", handler.Contact)
	})
	r.NotFound(web.SPAHandler().ServeHTTP)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.L.Info("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Returning instead of exiting lets the deferred store close run on
	// both paths.
	select {
	case err := <-serverErr:
		logger.L.Error("server failed", "error", err)
	case <-stop:
		logger.L.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.L.Error("shutdown failed", "error", err)
		}
	}
}
