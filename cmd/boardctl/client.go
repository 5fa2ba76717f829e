package main

import (
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/boardapi"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

// apiClient builds a board API client for the server named by the --server
// flag. Transport settings are fixed: a CLI invocation is short-lived, so it
// gets a small retry budget and no rate limiting.
func apiClient() *boardapi.Client {
	cfg := &config.ClientConfig{
		BaseURL: serverURL,
		Timeout: 10 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       10 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	logger := slog.New(slog.DiscardHandler)
	return boardapi.NewClient(httpclient.New(cfg, "taskboard", nil, logger), logger)
}
