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

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"

	"dulcetienda_server/api"
	"dulcetienda_server/config"
	"dulcetienda_server/database"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(logger, cfg, db),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go awaitShutdown(srv, db, logger)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", gecho.Field("error", err))
	}

	logger.Info("Server stopped")
}

// awaitShutdown drains in-flight requests and closes the database when the
// process receives SIGINT or SIGTERM.
func awaitShutdown(srv *http.Server, db *database.DB, logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	sig := <-c
	logger.Info("Received shutdown signal", gecho.Field("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", gecho.Field("error", err))
	}

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", gecho.Field("error", err))
	}
}
