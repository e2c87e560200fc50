package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	healthhttp "github.com/pulselabs/pulse-api/internal/adapters/http/health"
	metahttp "github.com/pulselabs/pulse-api/internal/adapters/http/meta"
	notehttp "github.com/pulselabs/pulse-api/internal/adapters/http/note"
	notepg "github.com/pulselabs/pulse-api/internal/adapters/note/postgres"
	apphealth "github.com/pulselabs/pulse-api/internal/application/health"
	appnote "github.com/pulselabs/pulse-api/internal/application/note"
	"github.com/pulselabs/pulse-api/internal/infrastructure/config"
	"github.com/pulselabs/pulse-api/internal/infrastructure/database"
	"github.com/pulselabs/pulse-api/internal/infrastructure/http/server"
	"github.com/pulselabs/pulse-api/internal/infrastructure/logger"
	"github.com/pulselabs/pulse-api/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "service stopped: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.App.Name, cfg.Log.Level, cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The pool connects lazily: the service must come up and answer health
	// checks even when the database is down.
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	m := metrics.New()

	gate := apphealth.NewGate()
	healthSvc := apphealth.NewService(
		apphealth.Metadata{
			Service:     cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
		},
		gate,
		pool,
		cfg.Database.ConnectTimeout,
		log,
	)
	healthSvc.OnProbe(m.ObserveProbe)

	noteSvc := appnote.NewService(notepg.NewRepository(pool, log))

	// Delayed bootstrap: after the startup window, run the one-time schema
	// setup and flip the gate.
	var bootstrap sync.WaitGroup
	bootstrap.Add(1)
	go func() {
		defer bootstrap.Done()
		apphealth.Bootstrap(ctx, cfg.Startup.Delay, gate, func(ctx context.Context) error {
			return database.Bootstrap(ctx, pool, log)
		}, log, m.SetReady)
	}()

	srv, err := server.New(server.Options{
		Config:        cfg,
		Logger:        log,
		Metrics:       m,
		HealthHandler: healthhttp.NewHandler(healthSvc).Status,
		MetaHandler:   metahttp.NewHandler(cfg).Root,
		Notes:         notehttp.NewHandler(noteSvc, log),
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	log.Info("Starting HTTP server", "port", cfg.HTTP.Port)
	runErr := srv.Run(ctx)

	// Shutdown order: the server has already drained; release the bootstrap
	// task if it is still waiting, then the deferred pool.Close frees the
	// connections.
	cancel()
	bootstrap.Wait()
	return runErr
}
