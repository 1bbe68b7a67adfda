package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"bite-sized-learning-go/config"
	"bite-sized-learning-go/internal/catalog"
	"bite-sized-learning-go/internal/learning"
	"bite-sized-learning-go/internal/logger"
	"bite-sized-learning-go/internal/session"
)

const eventBuffer = 32

func main() {
	if err := run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.IsDevelopment(), cfg.LogLevel)
	slog.SetDefault(log)

	cat := catalog.Default()
	hub := learning.NewHub(eventBuffer, log)
	sessions := session.NewManager(cat, cfg.SessionTTL, log, session.WithOnEnd(hub.CloseSession))
	tokens := session.NewTokenIssuer([]byte(cfg.SessionSecret), cfg.SessionTTL)
	service := learning.NewService(cat, sessions, hub, log)

	router := httprouter.New()
	session.NewHandler(sessions, tokens, log).Routes(router)
	learning.NewHandler(service, cfg.AllowedOrigins, log).Routes(router)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           logger.Middleware(log)(tokens.Middleware(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, cfg.SessionSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr, "environment", cfg.Environment, "reels", len(cat.Items()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped", "open_sessions", sessions.Len())
	return nil
}
