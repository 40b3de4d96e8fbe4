package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-tracker/config"
	"pos-tracker/internal/models"
	"pos-tracker/internal/service"
	"pos-tracker/internal/storage"
	"pos-tracker/internal/store"
	"pos-tracker/internal/util"
	"pos-tracker/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting pos-tracker")

	tp, err := util.InitTracer("pos-tracker", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	fileStore, err := storage.NewFileStore(cfg.App.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	products, transactions, err := storage.Bootstrap(fileStore, cfg.App.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load session state: %v", err)
	}

	st := store.NewStore()
	st.Restore(products, transactions)
	log.Printf("Session loaded: %d products, %d ledger entries", len(products), len(transactions))

	alertCh := make(chan models.Transaction, cfg.Business.AlertQueueSize)
	inventory := service.NewInventoryService(
		st,
		fileStore,
		store.ParseOversellPolicy(cfg.Business.OversellPolicy),
		alertCh,
	)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	alerts := worker.NewAlertWorker(alertCh,
		cfg.Business.LowStockThreshold, cfg.Business.CriticalStockThreshold)
	go func() {
		if err := alerts.Start(workerCtx); err != nil && err != context.Canceled {
			log.Printf("Alert worker error: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf("localhost:%s", cfg.Observ.MetricsPort),
		Handler: mux,
	}
	go func() {
		log.Printf("Serving metrics on port %s", cfg.Observ.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	console := newConsole(inventory, os.Stdin, os.Stdout)
	consoleDone := make(chan struct{})
	go func() {
		console.run(context.Background())
		close(consoleDone)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-consoleDone:
	}

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Metrics server forced to shutdown: %v", err)
	}

	workerCancel()
	<-alerts.Done()

	log.Println("Session closed")
}
