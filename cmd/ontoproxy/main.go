package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ontoproxy/ontoproxy/pkg/crex"
	"github.com/ontoproxy/ontoproxy/pkg/orchestrator"
)

func main() {
	handler := crex.NewHandler()
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, ok, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		logger.Error("configuration error", "err", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	switch {
	case cfg.Verbose:
		handler.SetLevel(slog.LevelDebug)
	case cfg.Quiet:
		handler.SetLevel(slog.LevelWarn)
	}
	handler.SetFormatter(crex.NewPrettyFormatter(true))

	orch := orchestrator.New(cfg.CacheDir, http.DefaultClient)
	mux := http.NewServeMux()
	mux.Handle("/", newOntologyHandler(orch, cfg.Preference, logger))

	srv := &http.Server{
		Addr:              cfg.Address + ":" + strconv.Itoa(cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("ontoproxy starting",
			"address", cfg.Address,
			"port", cfg.Port,
			"cache_dir", cfg.CacheDir,
			"preference", preferenceName(cfg.Preference),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutdown signal received — draining connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}

	logger.Info("ontoproxy stopped")
}

func preferenceName(p orchestrator.Preference) string {
	if p == orchestrator.PreferConvert {
		return "prefer-convert"
	}
	return "prefer-download"
}

