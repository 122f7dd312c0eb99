package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Csully01/stock-exchange-webserver/internal/config"
	"github.com/Csully01/stock-exchange-webserver/internal/handler"
	"github.com/Csully01/stock-exchange-webserver/internal/server"
	"github.com/Csully01/stock-exchange-webserver/internal/service"
	"github.com/Csully01/stock-exchange-webserver/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:ADMIN_PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("ADMIN_PORT")
		if port == "" {
			port = "8081"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ledger and transaction service.
	ledger := store.NewLedger()
	txSvc := service.NewTransactionService(ledger)

	// Trading socket server.
	wireSrv := server.New(txSvc, logger, cfg.MaxConnections, cfg.WireReadTimeout, cfg.WireWriteTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wireAddr := fmt.Sprintf(":%d", cfg.Port)
	ln, err := net.Listen("tcp", wireAddr)
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", wireAddr), slog.String("error", err.Error()))
		os.Exit(1)
	}

	wireDone := make(chan struct{})
	go func() {
		defer close(wireDone)
		logger.Info("trading server starting",
			slog.String("addr", wireAddr),
			slog.Int("max_connections", cfg.MaxConnections),
		)
		if err := wireSrv.Serve(ctx, ln); err != nil {
			logger.Error("trading server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Admin HTTP server.
	router := handler.NewRouter(txSvc, logger)
	adminAddr := fmt.Sprintf(":%d", cfg.AdminPort)
	adminSrv := &http.Server{
		Addr:         adminAddr,
		Handler:      router,
		ReadTimeout:  cfg.AdminReadTimeout,
		WriteTimeout: cfg.AdminWriteTimeout,
		IdleTimeout:  cfg.AdminIdleTimeout,
	}

	go func() {
		logger.Info("admin server starting", slog.String("addr", adminAddr))
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown: stop the admin server, then cancel the context so
	// the trading server stops accepting and drains in-flight connections.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := adminSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown error", slog.String("error", err.Error()))
	}
	cancel()
	select {
	case <-wireDone:
	case <-shutdownCtx.Done():
		logger.Warn("trading server did not drain before shutdown timeout")
	}

	logger.Info("server stopped")
}
