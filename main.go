package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quality_server/config"
	"quality_server/internal/bootstrap"

	"github.com/joho/godotenv"
)

const (
	shutdownGrace = 10 * time.Second // time for in-flight batches to drain
)

func main() {
	// Load .env file if exists (for local development)
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	worker, cleanup, err := bootstrap.NewWorker(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize worker: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	worker.Start()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zlog := worker.Logger()
	zlog.Info().Dur("grace", shutdownGrace).Msg("signal received, shutting down")
	worker.Shutdown()
	time.Sleep(shutdownGrace)
	zlog.Info().Msg("worker stopped")
}
