package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"algoeconomics/internal/api"
	"algoeconomics/internal/checkout"
	"algoeconomics/internal/config"
	"algoeconomics/internal/data"
	"algoeconomics/internal/live"
	"algoeconomics/internal/logging"
	"algoeconomics/internal/metrics"
	"algoeconomics/internal/model"
	"algoeconomics/internal/ticker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const tokenIssuer = "algoeconomics"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadSite()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Presets: built-ins, optionally layered with a file that is reloaded on change.
	store := data.NewPresetStore(model.DefaultPresets())
	if path := cfg.Model.PresetsFile; path != "" {
		watcher, err := data.NewPresetWatcher(path, store,
			data.WithWatcherLogger(logger),
			data.OnReload(func(*model.PresetSet) { m.PresetReloads.Inc() }))
		if err != nil {
			return err
		}
		defer watcher.Stop()
		if err := watcher.Reload(); err != nil {
			return fmt.Errorf("load presets: %w", err)
		}
		if cfg.Model.WatchPresets {
			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("watch presets: %w", err)
			}
		}
	}

	deps := api.Deps{
		Logger:         logger,
		Presets:        store,
		Metrics:        m,
		Gatherer:       reg,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      cfg.Server.StaticDir,
		Live: live.NewServer(
			live.WithPresets(store),
			live.WithRecorder(m),
			live.WithObserver(m),
			live.WithDebounceDelay(cfg.Model.DebounceDelay),
			live.WithAllowedOrigins(cfg.Server.AllowedOrigins),
			live.WithLogger(logger),
		).Handler(),
	}

	if cfg.Ticker.Enabled {
		feed := ticker.NewFeed(ticker.WithInterval(cfg.Ticker.Interval), ticker.WithLogger(logger))
		go feed.Run(ctx, func(ticker.Snapshot) { m.TickerRefreshes.Inc() })
		deps.Tickers = feed
	}

	if cfg.Checkout.Enabled() {
		svc := checkout.NewService(
			checkout.NewTokenService(cfg.Checkout.SessionSecret, tokenIssuer),
			checkout.NewStripeProvider(cfg.Checkout.StripeSecretKey),
			checkout.Config{
				SuccessURL: cfg.Checkout.SuccessURL,
				CancelURL:  cfg.Checkout.CancelURL,
				CacheTTL:   cfg.Checkout.CacheTTL,
			},
			logger)
		defer svc.Close()
		deps.Checkout = svc
	} else {
		logger.Warn("checkout disabled: stripe secret key or session secret not configured")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.NewRouter(deps),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting API server", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
