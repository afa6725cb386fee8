package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thanhnp/eth-explorer-api/internal/api"
	"github.com/thanhnp/eth-explorer-api/internal/config"
	"github.com/thanhnp/eth-explorer-api/internal/etherscan"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration; missing credentials stop us before binding
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, using info", cfg.Log.Level)
	}

	client := etherscan.NewClient(cfg.Etherscan.BaseURL, cfg.Etherscan.Timeout)
	router := api.NewRouter(cfg.Etherscan, client, log)

	// Create HTTP server
	addr := cfg.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Etherscan.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Bind before announcing so a busy port fails fast
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	log.Infof("Server running at http://%s", addr)
	log.Info("Available endpoints:")
	log.Info("GET /eth/balance - Get Ethereum wallet balance")
	log.Info("GET /eth/transactions - Get transaction details")

	// Start HTTP server in goroutine
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
