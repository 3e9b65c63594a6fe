package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/blockpulse/hotswap-streamer/internal/config"
	"github.com/blockpulse/hotswap-streamer/internal/emit"
	"github.com/blockpulse/hotswap-streamer/internal/ethereum"
	"github.com/blockpulse/hotswap-streamer/internal/failover"
	"github.com/blockpulse/hotswap-streamer/internal/health"
	"github.com/blockpulse/hotswap-streamer/internal/metrics"
	"github.com/blockpulse/hotswap-streamer/internal/model"
	"github.com/blockpulse/hotswap-streamer/internal/stream"
)

const (
	recordFlushSize     = 64
	recordFlushInterval = time.Second
	recordFlushRPS      = 100
)

func main() {
	cfg := config.Config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("configuration rejected", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block streamer failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	providers := make([]failover.Provider, 0, len(cfg.Endpoints))
	names := make([]model.EndpointName, 0, len(cfg.Endpoints))
	for _, name := range cfg.EndpointOrder() {
		endpointName := model.EndpointName(name)
		client := ethereum.NewClient(endpointName, cfg.Endpoints[name], cfg.RPCTimeout)
		providers = append(providers, ethereum.NewObservedClient(client, metrics.NewRPC(cfg.Chain, endpointName)))
		names = append(names, endpointName)
		logger.Info("initialized endpoint", zap.String("endpoint", name))
	}

	monitor := health.NewMonitor(names, health.Config{
		MaxMeasurements:    cfg.MaxMeasurements,
		MaxAvgResponseTime: cfg.MaxAvgResponseTime,
		ErrorThreshold:     cfg.ErrorThreshold,
		ProbeTimeout:       cfg.ProbeTimeout,
	}, logger.Named("health"))

	controller, err := failover.NewController(
		providers,
		model.EndpointName(cfg.DefaultEndpoint),
		monitor,
		metrics.NewFailover(cfg.Chain),
		cfg.MinSwitchInterval,
		logger.Named("failover"),
	)
	if err != nil {
		return fmt.Errorf("init failover controller: %w", err)
	}

	emitter := emit.New(emit.NewLogSink(logger.Named("blocks")), recordFlushSize, recordFlushInterval, recordFlushRPS, logger)
	emitter.Start(ctx)
	defer emitter.Stop()

	streamer, err := stream.New(controller, emitter, metrics.NewStreamer(cfg.Chain), stream.Config{
		MaxBlockProcessingTime: cfg.MaxBlockProcessingTime,
		PollInterval:           cfg.PollInterval,
		RecoverySleep:          cfg.RecoverySleep,
	}, logger.Named("streamer"))
	if err != nil {
		return fmt.Errorf("init streamer: %w", err)
	}

	srv := newMetricsServer(cfg.MetricsAddr)
	go func() {
		if serveErr := srv.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the metrics server")
		if shutdownErr := srv.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("metrics server shutdown failed", zap.Error(shutdownErr))
		}
	}()

	logger.Info("starting block streamer",
		zap.String("chain", cfg.Chain),
		zap.String("default_endpoint", cfg.DefaultEndpoint),
		zap.Int("endpoints", len(providers)))
	return streamer.Run(ctx)
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
