package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/heatwave-audio/attribution-engine/internal/adapter"
	"github.com/heatwave-audio/attribution-engine/internal/bridge"
	"github.com/heatwave-audio/attribution-engine/internal/config"
	"github.com/heatwave-audio/attribution-engine/internal/detector"
	"github.com/heatwave-audio/attribution-engine/internal/geofence"
	"github.com/heatwave-audio/attribution-engine/internal/integrity"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/settlement"
	"github.com/heatwave-audio/attribution-engine/internal/store"
	"github.com/heatwave-audio/attribution-engine/internal/window"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ingest-bridge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ingest bridge")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and components
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	ledger := integrity.NewLedger(dataStore)
	windows := window.NewManager(dataStore, clock, cfg.Attribution.WindowLength)
	matcher := geofence.NewMatcher(dataStore, cfg.Attribution.GeofenceBonusPercentage)

	det := detector.NewDetector(detector.Config{
		SpikeThreshold: cfg.Attribution.SpikeThreshold,
		BaselinePeriod: cfg.Attribution.BaselinePeriod,
	}, dataStore, ledger, windows, clock)

	eng := settlement.NewEngine(settlement.Config{
		BountyPercentage: cfg.Attribution.BountyPercentage,
	}, dataStore, ledger, windows, matcher, clock)

	// Connect to NATS and create the bridge
	ingestBridge, err := bridge.NewBridge(bridge.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWait:        cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
		WorkerPoolSize: cfg.Worker.PoolSize,
		WorkerQueue:    cfg.Worker.QueueSize,
	}, det, eng)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ingest bridge", zap.Error(err))
	}
	defer ingestBridge.Close()

	logger.InfoCtx(ctx, "Initialized ingest bridge",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
		zap.Int("worker_pool_size", cfg.Worker.PoolSize),
	)

	// Run the bridge in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := ingestBridge.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop consuming; Close drains in-flight work
	cancel()

	logger.Info("Ingest bridge stopped")
}
