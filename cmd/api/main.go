// Sleep Calculator API
//
// REST API for sleep-cycle aligned wake-up times.
//
//	@title			Sleep Calculator API
//	@version		1.0
//	@description	Wake-up times aligned to 90-minute sleep cycles, ranked by estimated sleep quality or by proximity to a target.
//
//	@BasePath	/v1
//
//	@tag.name			wake-times
//	@tag.description	Sleep-cycle wake-up time calculation
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

	"github.com/blaisecz/sleep-calculator/internal/api"
	"github.com/blaisecz/sleep-calculator/internal/api/handler"
	"github.com/blaisecz/sleep-calculator/internal/config"
	"github.com/blaisecz/sleep-calculator/internal/service"
	"github.com/blaisecz/sleep-calculator/internal/sleepcycle"
	"github.com/blaisecz/sleep-calculator/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	defaults, err := serviceDefaults(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-calculator-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()
	if cfg.OTLPEndpoint == "" {
		log.Println("Warning: OTLP_ENDPOINT not configured, traces will not be exported")
	}

	// Initialize service and handlers
	wakeTimeService := service.NewCachedWakeTimeService(service.NewWakeTimeService(defaults), cfg.CacheSize)
	wakeTimeHandler := handler.NewWakeTimeHandler(wakeTimeService)

	// Setup router
	router := api.NewRouter(wakeTimeHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

func serviceDefaults(cfg *config.Config) (service.Defaults, error) {
	policy, err := sleepcycle.ParsePolicy(cfg.DefaultPolicy)
	if err != nil {
		return service.Defaults{}, err
	}
	format, err := sleepcycle.ParseTimeFormat(cfg.DefaultTimeFormat)
	if err != nil {
		return service.Defaults{}, err
	}
	return service.Defaults{
		Policy:            policy,
		TimeFormat:        format,
		FallAsleepMinutes: cfg.DefaultFallAsleepMinutes,
		Debug:             cfg.Debug(),
	}, nil
}
