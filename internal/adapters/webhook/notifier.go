// Package webhook provides the outbound adapter that delivers board
// snapshots to configured HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/app/fanout"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Notifier posts a snapshot payload to every configured endpoint after each
// board mutation. It registers with the board as a subscriber; snapshots are
// queued and delivered from the Notifier's own goroutine so the board's
// fan-out never waits on the network.
//
// The queue is bounded. When deliveries fall behind, the oldest queued
// snapshot is dropped in favor of the newest: endpoints receive complete
// board states, so skipping an intermediate state loses nothing durable.
type Notifier struct {
	client    *httpclient.Client
	endpoints []string
	workers   int
	logger    *slog.Logger
	queue     chan project.Snapshot
}

var _ ports.BoardSubscriber = (*Notifier)(nil)

// NewNotifier creates a Notifier that delivers through the given client.
// The client carries the retry, circuit breaker, and rate limit policy;
// cfg supplies the endpoint list, delivery concurrency, and queue depth.
// If logger is nil, logging is discarded.
func NewNotifier(client *httpclient.Client, cfg config.WebhookConfig, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		client:    client,
		endpoints: cfg.Endpoints,
		workers:   cfg.MaxConcurrent,
		logger:    logger,
		queue:     make(chan project.Snapshot, cfg.QueueSize),
	}
}

// OnSnapshot receives a board snapshot during fan-out. It never blocks: when
// the queue is full the oldest snapshot is dropped to make room.
func (n *Notifier) OnSnapshot(snapshot project.Snapshot) {
	for {
		select {
		case n.queue <- snapshot:
			return
		default:
		}
		select {
		case <-n.queue:
			n.logger.Warn("webhook queue full, dropping oldest snapshot")
		default:
		}
	}
}

// Run consumes the queue and delivers snapshots until ctx is canceled.
// Call it in its own goroutine.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-n.queue:
			n.deliver(ctx, snapshot)
		}
	}
}

// Pending returns the number of queued, undelivered snapshots.
func (n *Notifier) Pending() int {
	return len(n.queue)
}

func (n *Notifier) deliver(ctx context.Context, snapshot project.Snapshot) {
	payload := NewPayload(snapshot, time.Now().UTC())
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.ErrorContext(ctx, "webhook payload marshal failed", slog.Any("error", err))
		return
	}

	results := fanout.Run(ctx, n.workers, n.endpoints, func(ctx context.Context, endpoint string) (int, error) {
		return n.post(ctx, endpoint, body)
	})

	if err := fanout.Errs(results); err != nil {
		n.logger.WarnContext(ctx, "webhook delivery incomplete",
			slog.Int("endpoints", len(n.endpoints)),
			slog.Any("error", err),
		)
		return
	}

	n.logger.InfoContext(ctx, "webhook delivery complete",
		slog.Int("endpoints", len(n.endpoints)),
		slog.Int("projects", len(snapshot)),
	)
}

// post sends one delivery and returns the response status code.
func (n *Notifier) post(ctx context.Context, endpoint string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("creating webhook request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(ctx, req)
	if err != nil {
		// Do can return both resp and err when retries are exhausted on a
		// retryable status; the body still needs closing.
		if resp != nil {
			n.drainBody(ctx, resp)
		}
		return 0, fmt.Errorf("POST %s: %w", endpoint, err)
	}
	n.drainBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, fmt.Errorf("POST %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// drainBody discards and closes a response body so the transport can reuse
// the connection.
func (n *Notifier) drainBody(ctx context.Context, resp *http.Response) {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		n.logger.WarnContext(ctx, "failed to drain response body", slog.Any("error", err))
	}
	if err := resp.Body.Close(); err != nil {
		n.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
