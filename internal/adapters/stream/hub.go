// Package stream provides the WebSocket adapter that pushes live board
// snapshots to connected clients.
package stream

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// writeTimeout bounds a single WebSocket write. Clients that cannot keep up
// are dropped rather than allowed to stall the broadcast loop.
const writeTimeout = 10 * time.Second

// client is one connected WebSocket consumer. The mutex serializes writes:
// the broadcast loop and the initial snapshot send share the connection.
type client struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	filter project.Filter
}

func (c *client) write(board dto.BoardResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(board)
}

func (c *client) writeLocked(board dto.BoardResponse) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(board)
}

// Hub fans board snapshots out to WebSocket clients. It registers with the
// board as a subscriber; snapshots arrive on the fan-out goroutine and are
// handed to the hub's own broadcast loop so the board is never blocked by a
// slow socket. Consecutive snapshots coalesce: a client that falls behind
// receives the latest complete board state, not every intermediate one.
//
// Hub is an http.Handler: mounting it serves the upgrade endpoint. Clients
// may pass a status query parameter to receive only one board column.
type Hub struct {
	svc     ports.BoardService
	metrics *telemetry.Metrics
	logger  *slog.Logger

	upgrader websocket.Upgrader
	updates  chan project.Snapshot

	mu      sync.RWMutex
	clients map[*client]struct{}
}

var (
	_ ports.BoardSubscriber = (*Hub)(nil)
	_ http.Handler          = (*Hub)(nil)
)

// NewHub creates a stream hub backed by the given board service.
// If metrics is nil, metric recording is skipped. If logger is nil, logging
// is discarded.
func NewHub(svc ports.BoardService, metrics *telemetry.Metrics, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
		upgrader: websocket.Upgrader{
			// The board UI is served from its own origin.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		updates: make(chan project.Snapshot, 1),
		clients: make(map[*client]struct{}),
	}
}

// OnSnapshot receives a board snapshot during fan-out. It never blocks: the
// snapshot replaces any still-undelivered one, since each snapshot carries
// the complete board state.
func (h *Hub) OnSnapshot(snapshot project.Snapshot) {
	for {
		select {
		case h.updates <- snapshot:
			return
		default:
		}
		select {
		case <-h.updates:
		default:
		}
	}
}

// Run drives the broadcast loop until ctx is canceled, then closes every
// client connection. Call it in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case snapshot := <-h.updates:
			h.broadcast(snapshot)
		}
	}
}

// ServeHTTP upgrades the request to a WebSocket, sends the current board
// state, and then keeps the connection registered for broadcasts until the
// client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter project.Filter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := project.ParseStatus(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		filter.Status = status
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the handshake error.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &client{conn: conn, filter: filter}

	// Register before reading the initial state, holding the client's write
	// mutex throughout. A mutation that lands after the read then queues its
	// broadcast behind the initial send, so the client never ends up behind
	// the board.
	c.mu.Lock()
	h.register(c)
	board, err := h.svc.Board(r.Context(), filter)
	if err == nil {
		err = c.writeLocked(dto.ToBoardResponse(board))
	}
	c.mu.Unlock()

	if err != nil {
		h.logger.WarnContext(r.Context(), "initial snapshot send failed", slog.Any("error", err))
		h.unregister(c)
		_ = conn.Close()
		return
	}

	h.logger.InfoContext(r.Context(), "stream client connected",
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("status_filter", filter.Status.String()),
	)

	defer func() {
		h.unregister(c)
		_ = conn.Close()
		h.logger.InfoContext(r.Context(), "stream client disconnected",
			slog.String("remote_addr", r.RemoteAddr),
		)
	}()

	// Inbound frames are ignored; the read loop exists to detect close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.StreamClients.Add(context.Background(), 1)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok && h.metrics != nil {
		h.metrics.StreamClients.Add(context.Background(), -1)
	}
}

func (h *Hub) broadcast(snapshot project.Snapshot) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		view := dto.ToBoardResponse(snapshot.Filter(c.filter))
		if err := c.write(view); err != nil {
			h.logger.Warn("dropping stream client", slog.Any("error", err))
			h.unregister(c)
			_ = c.conn.Close()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.conn.Close()
	}
	clear(h.clients)
}
