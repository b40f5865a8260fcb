package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/heatwave-audio/attribution-engine/internal/detector"
	"github.com/heatwave-audio/attribution-engine/internal/logger"
	"github.com/heatwave-audio/attribution-engine/internal/settlement"
)

const (
	// SubjectUploadProcessed is published by the report-ingestion side once a
	// spin upload has been parsed and stored
	SubjectUploadProcessed = "spins.upload.processed"
	// SubjectRoyaltyPosted is published by the royalty ledger when a royalty
	// transaction posts
	SubjectRoyaltyPosted = "royalty.transaction.posted"
)

// UploadProcessedEvent announces a stored spin upload ready for detection
type UploadProcessedEvent struct {
	EventID  uuid.UUID `json:"event_id"`
	UploadID int64     `json:"upload_id"`
}

// RoyaltyPostedEvent announces a posted royalty transaction ready for settlement
type RoyaltyPostedEvent struct {
	EventID              uuid.UUID `json:"event_id"`
	RoyaltyTransactionID int64     `json:"royalty_transaction_id"`
	ArtistID             int64     `json:"artist_id"`
}

// Config holds the configuration for the ingest bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
	MaxDeliver     int
	WorkerPoolSize int
	WorkerQueue    int
}

// Bridge consumes upload and royalty events from JetStream and drives the
// detection and settlement paths synchronously per message
type Bridge interface {
	// Run starts consuming until the context is cancelled
	Run(ctx context.Context) error
	// Close drains the worker pool and closes the NATS connection
	Close()
}

type bridge struct {
	nc       *nats.Conn
	js       jetstream.JetStream
	detector detector.Detector
	engine   settlement.Engine
	pool     pond.Pool
	config   Config
}

// NewBridge connects to NATS and creates an ingest bridge
func NewBridge(cfg Config, det detector.Detector, eng settlement.Engine) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &bridge{
		nc:       nc,
		js:       js,
		detector: det,
		engine:   eng,
		pool:     pond.NewPool(cfg.WorkerPoolSize, pond.WithQueueSize(cfg.WorkerQueue)),
		config:   cfg,
	}, nil
}

// Run starts consuming until the context is cancelled
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting ingest bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
	)

	consumerConfig := jetstream.ConsumerConfig{
		Durable:        b.config.ConsumerName,
		AckPolicy:      jetstream.AckExplicitPolicy,
		AckWait:        b.config.AckWait,
		MaxDeliver:     b.config.MaxDeliver,
		FilterSubjects: []string{SubjectUploadProcessed, SubjectRoyaltyPosted},
	}

	// Consumer setup races with stream provisioning on fresh deployments, so
	// retry with exponential backoff before giving up
	var consumer jetstream.Consumer
	err := backoff.Retry(func() error {
		var err error
		consumer, err = b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
		return err
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	sub, err := consumer.Consume(func(msg jetstream.Msg) {
		b.pool.Go(func() {
			b.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages")

	<-ctx.Done()
	logger.InfoCtx(ctx, "Shutting down ingest bridge")
	return ctx.Err()
}

// handleMessage dispatches a single JetStream message. Malformed payloads
// are terminated (poison messages); transient failures are nak'd for
// redelivery up to MaxDeliver.
func (b *bridge) handleMessage(ctx context.Context, msg jetstream.Msg) {
	switch msg.Subject() {
	case SubjectUploadProcessed:
		var event UploadProcessedEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to parse upload event: %w", err))
			b.term(msg)
			return
		}

		spikes, err := b.detector.DetectSpikesFromUpload(ctx, event.UploadID)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("event_id", event.EventID.String()),
				zap.Int64("upload_id", event.UploadID),
			)
			b.nak(msg)
			return
		}

		logger.DebugCtx(ctx, "Upload processed",
			zap.String("event_id", event.EventID.String()),
			zap.Int64("upload_id", event.UploadID),
			zap.Int("spikes_detected", len(spikes)),
		)
		b.ack(msg)

	case SubjectRoyaltyPosted:
		var event RoyaltyPostedEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to parse royalty event: %w", err))
			b.term(msg)
			return
		}

		// A nil record is the common no-active-window path, acked like any
		// other success
		_, err := b.engine.CalculateBounty(ctx, event.ArtistID, event.RoyaltyTransactionID)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("event_id", event.EventID.String()),
				zap.Int64("royalty_transaction_id", event.RoyaltyTransactionID),
			)
			b.nak(msg)
			return
		}
		b.ack(msg)

	default:
		logger.WarnCtx(ctx, "Unexpected subject", zap.String("subject", msg.Subject()))
		b.term(msg)
	}
}

func (b *bridge) ack(msg jetstream.Msg) {
	if err := msg.Ack(); err != nil {
		logger.Error(fmt.Errorf("failed to ack message: %w", err))
	}
}

func (b *bridge) nak(msg jetstream.Msg) {
	if err := msg.Nak(); err != nil {
		logger.Error(fmt.Errorf("failed to nak message: %w", err))
	}
}

func (b *bridge) term(msg jetstream.Msg) {
	if err := msg.Term(); err != nil {
		logger.Error(fmt.Errorf("failed to terminate message: %w", err))
	}
}

// Close drains the worker pool and closes the NATS connection
func (b *bridge) Close() {
	b.pool.StopAndWait()
	if b.nc != nil {
		b.nc.Close()
	}
}
