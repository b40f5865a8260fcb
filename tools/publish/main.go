// Command publish sends spin-upload and royalty events into the JetStream
// stream consumed by the ingest bridge. Development tool for exercising the
// detection and settlement paths end to end without the surrounding app.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/heatwave-audio/attribution-engine/internal/bridge"
)

type config struct {
	NATSURL      string
	StreamName   string
	Event        string
	UploadID     int64
	RoyaltyID    int64
	ArtistID     int64
	EnsureStream bool
	PublishCount int
	PublishDelay time.Duration
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nc, err := nats.Connect(cfg.NATSURL, nats.Name("heatwave-publish-tool"))
	if err != nil {
		fatalf("failed to connect to NATS at %s: %v", cfg.NATSURL, err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		fatalf("failed to create JetStream context: %v", err)
	}

	if cfg.EnsureStream {
		_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     cfg.StreamName,
			Subjects: []string{bridge.SubjectUploadProcessed, bridge.SubjectRoyaltyPosted},
		})
		if err != nil {
			fatalf("failed to ensure stream %s: %v", cfg.StreamName, err)
		}
		fmt.Printf("Stream %s ready\n", cfg.StreamName)
	}

	subject, payload := buildEvent(cfg)

	for i := 0; i < cfg.PublishCount; i++ {
		ack, err := js.Publish(ctx, subject, payload)
		if err != nil {
			fatalf("failed to publish to %s: %v", subject, err)
		}
		fmt.Printf("Published to %s (stream=%s seq=%d)\n", subject, ack.Stream, ack.Sequence)

		if i < cfg.PublishCount-1 {
			time.Sleep(cfg.PublishDelay)
		}
	}
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.NATSURL, "nats", nats.DefaultURL, "NATS server URL")
	flag.StringVar(&cfg.StreamName, "stream", "SPIN_EVENTS", "JetStream stream name")
	flag.StringVar(&cfg.Event, "event", "upload", "Event type to publish: upload or royalty")
	flag.Int64Var(&cfg.UploadID, "upload", 0, "Upload ID for upload events")
	flag.Int64Var(&cfg.RoyaltyID, "royalty", 0, "Royalty transaction ID for royalty events")
	flag.Int64Var(&cfg.ArtistID, "artist", 0, "Artist ID for royalty events")
	flag.BoolVar(&cfg.EnsureStream, "ensure-stream", false, "Create the stream if it does not exist")
	flag.IntVar(&cfg.PublishCount, "count", 1, "Number of copies to publish")
	flag.DurationVar(&cfg.PublishDelay, "delay", 100*time.Millisecond, "Delay between publishes")
	flag.Parse()

	switch cfg.Event {
	case "upload":
		if cfg.UploadID == 0 {
			fatalf("-upload is required for upload events")
		}
	case "royalty":
		if cfg.RoyaltyID == 0 || cfg.ArtistID == 0 {
			fatalf("-royalty and -artist are required for royalty events")
		}
	default:
		fatalf("unknown event type %q (want upload or royalty)", cfg.Event)
	}

	return cfg
}

func buildEvent(cfg config) (string, []byte) {
	switch cfg.Event {
	case "upload":
		payload, _ := json.Marshal(bridge.UploadProcessedEvent{
			EventID:  uuid.New(),
			UploadID: cfg.UploadID,
		})
		return bridge.SubjectUploadProcessed, payload
	default:
		payload, _ := json.Marshal(bridge.RoyaltyPostedEvent{
			EventID:              uuid.New(),
			RoyaltyTransactionID: cfg.RoyaltyID,
			ArtistID:             cfg.ArtistID,
		})
		return bridge.SubjectRoyaltyPosted, payload
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
