package boardapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
)

// Stream is an open board stream. Frames are full board states; call Next
// to block for the following one and Close to tear the connection down.
type Stream struct {
	conn *websocket.Conn
}

// Stream opens the board WebSocket stream at GET /api/v1/board/stream,
// optionally filtered by status. The first frame is the board as it stood
// when the subscription was accepted.
func (c *Client) Stream(ctx context.Context, filter project.Filter) (*Stream, error) {
	wsURL, err := streamURL(c.req.BaseURL(), filter)
	if err != nil {
		return nil, err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		// On a failed handshake gorilla hands back the server's HTTP
		// response; translate it like any other API error.
		if resp != nil {
			defer c.closeHandshakeBody(ctx, resp)
			return nil, TranslateHTTPError(resp)
		}
		return nil, fmt.Errorf("dialing %s: %w", wsURL, err)
	}

	return &Stream{conn: conn}, nil
}

// Next blocks until the next full board frame arrives and returns it as a
// domain snapshot. Returns an error once the connection is closed.
func (s *Stream) Next() (project.Snapshot, error) {
	var dto boardDTO
	if err := s.conn.ReadJSON(&dto); err != nil {
		return nil, fmt.Errorf("reading board frame: %w", err)
	}
	return toDomainSnapshot(dto), nil
}

// Close closes the underlying connection. Safe to call while another
// goroutine is blocked in Next; that Next returns an error.
func (s *Stream) Close() error {
	return s.conn.Close()
}

func (c *Client) closeHandshakeBody(ctx context.Context, resp *http.Response) {
	if resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close handshake response body",
			slog.String("error", err.Error()),
		)
	}
}

// streamURL rewrites the API base URL to the stream endpoint's ws:// form.
func streamURL(base string, filter project.Filter) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing server URL %q: %w", base, err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q in server URL %q", u.Scheme, base)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/v1/board/stream"
	if filter.Status != "" {
		u.RawQuery = url.Values{"status": {filter.Status.String()}}.Encode()
	}
	return u.String(), nil
}
