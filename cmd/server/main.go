// Package main initializes and starts the GopherCards HTTP server,
// setting up configuration, logging, the generation service, handlers,
// and routing.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/atinyakov/GopherCards/internal/config"
	"github.com/atinyakov/GopherCards/internal/logger"
	"github.com/atinyakov/GopherCards/internal/models"
	"github.com/atinyakov/GopherCards/internal/server/handler/http"
	"github.com/atinyakov/GopherCards/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// A missing credential is reported per request, not at startup, so
	// the key can be supplied without restarting.
	if options.APIKey == "" {
		zapLogger.Warn("no API key configured; generation requests will be rejected",
			zap.String("provider", options.Provider))
	}

	// Initialize the deck-building service.
	deckService := service.NewDeckService(
		nil, // default provider factory
		models.Provider(options.Provider),
		options.APIKey,
		options.Model,
		zapLogger,
	)

	// Create HTTP handlers for generation and export endpoints.
	deckHandler := &http.DeckHandler{DeckService: deckService}
	exportHandler := &http.ExportHandler{}

	// Build the router with middleware and routes.
	router := http.NewRouter(deckHandler, exportHandler, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Address),
		zap.String("provider", options.Provider),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
