package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentiform/config"
	"github.com/spacesedan/sentiform/internal/analysis"
	"github.com/spacesedan/sentiform/internal/charts"
	"github.com/spacesedan/sentiform/internal/logging"
	"github.com/spacesedan/sentiform/internal/sentiment"
	"github.com/spacesedan/sentiform/internal/web"
)

func main() {
	env := config.Env()
	config.LoadEnv(env)
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	svc := analysis.NewService(
		sentiment.NewAnalyzer(),
		charts.NewRenderer(cfg.ChartWidth, cfg.ChartHeight),
	)

	server, err := web.NewServer(svc, cfg.MaxBodyBytes)
	if err != nil {
		slog.Error("[Main] Failed to build server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("[Main] Listening",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("env", env))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-stopChan:
		slog.Info("[Main] Shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
		}
	}
}
