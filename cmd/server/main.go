package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CreativeSentinel/internal/api"
	"CreativeSentinel/internal/config"
	"CreativeSentinel/internal/ingest"
	"CreativeSentinel/internal/recorder"
	"CreativeSentinel/internal/report"
	"CreativeSentinel/internal/rollup"
	"CreativeSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CreativeSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := report.NewHTTPFetcher(time.Duration(cfg.Reports.FetchTimeoutSeconds)*time.Second, cfg.Proxy)
	log.Printf("[INFO] report fetcher: %s", fetcher.Name())

	// Init rollup store
	backend, err := rollup.NewFileBackend(cfg.Rollup.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] init rollup backend: %v", err)
	}
	store := rollup.Open(backend)
	log.Printf("[INFO] rollup store opened: %d dates", len(store.ListDates()))

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init analyzer
	analyzer := ingest.NewAnalyzer(fetcher, cfg.Rollup.Sub1)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	if cfg.Schedule.IngestCron != "" {
		sched := scheduler.NewScheduler(ctx, analyzer, store, rec, cfg.Reports.ClicksURL, cfg.Reports.ConversionsURL)
		if err := sched.Register(cfg.Schedule.IngestCron); err != nil {
			log.Fatalf("[FATAL] register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing ingest now")
			go sched.RunIngestNow()
		}
	}

	// Init HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(&api.Server{Analyzer: analyzer, Store: store, Recorder: rec}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] CreativeSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] CreativeSentinel stopped")
}
