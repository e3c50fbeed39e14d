// Package listener provides a Postgres LISTEN/NOTIFY consumer that tells the
// API when the ingestion pipeline has committed a new generation of tables.
// It holds a dedicated pgx connection (not from the pool).
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/cartola-scouts/internal/db"
)

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// Start listens on db.ChannelTablesReplaced and calls onReplace for every
// event. It reconnects automatically on connection loss and blocks until
// ctx is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, onReplace func(db.ReplacedEvent), logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, onReplace, logger)
		if ctx.Err() != nil {
			logger.Info("Table listener stopped (context cancelled)")
			return
		}

		logger.Error("Table listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, onReplace func(db.ReplacedEvent), logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	channel := pgx.Identifier{db.ChannelTablesReplaced}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	logger.Info("Table listener connected", "channel", db.ChannelTablesReplaced)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		event, err := Decode(notification.Payload)
		if err != nil {
			logger.Warn("Failed to parse table event",
				"payload", notification.Payload, "error", err)
			continue
		}

		logger.Info("Tables replaced", "tables", event.Tables, "ts", event.Timestamp)
		onReplace(event)
	}
}

// Decode parses a notification payload.
func Decode(payload string) (db.ReplacedEvent, error) {
	var event db.ReplacedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return db.ReplacedEvent{}, err
	}
	return event, nil
}
