package xref

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
)

// NATSPublisher publishes broken reference events over NATS JetStream.
type NATSPublisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
}

// NewNATSPublisher connects to the configured NATS server. Returns an
// error when event publishing is disabled.
func NewNATSPublisher(cfg *config.EventsConfig) (*NATSPublisher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("event publishing is disabled")
	}

	conn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &NATSPublisher{conn: conn, js: js, subject: cfg.Subject}, nil
}

// PublishBrokenRef implements Publisher.
func (p *NATSPublisher) PublishBrokenRef(ctx context.Context, event *BrokenRefEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := p.js.Publish(ctx, p.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}
	return nil
}

// Close drains the underlying connection.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}
