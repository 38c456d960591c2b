// Package bridge provides a pointer surface backed by a remote bridge
// process over a websocket. The bridge owns the actual input device (an
// emulator, a remote desktop, a device farm agent) and replays the input
// frames this client sends it.
package bridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rastkol/swipe-core/core/pointer"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is a [pointer.Surface] that forwards every pointer event to a
// remote bridge as a JSON input frame. Displayability and interactivity
// come from the status frame the bridge sends right after the connection
// is established.
type Client struct {
	ws *websocket.Conn
	mu sync.Mutex

	displayable bool
	interactive bool

	closeOnce sync.Once
	closed    bool
}

type dialOptions struct {
	authToken   string
	healthCheck bool
}

type DialOption func(*dialOptions)

// WithAuthToken sends the given token in the Authorization header of the
// websocket handshake and the health probe.
func WithAuthToken(token string) DialOption {
	return func(o *dialOptions) {
		o.authToken = token
	}
}

// WithoutHealthCheck skips the HTTP health probe before dialing. Useful
// for bridges that only expose the websocket endpoint.
func WithoutHealthCheck() DialOption {
	return func(o *dialOptions) {
		o.healthCheck = false
	}
}

// Dial connects to a bridge at the given ws:// or wss:// URL and waits for
// its status frame.
func Dial(ctx context.Context, bridgeURL string, opts ...DialOption) (*Client, error) {
	options := dialOptions{healthCheck: true}
	for _, opt := range opts {
		opt(&options)
	}

	parsed, err := url.Parse(bridgeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bridge url: %w", err)
	}

	header := http.Header{}
	if options.authToken != "" {
		header.Set("Authorization", "token "+options.authToken)
	}

	if options.healthCheck {
		if err := probeHealth(ctx, parsed, header); err != nil {
			return nil, fmt.Errorf("bridge health check failed: %w", err)
		}
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, parsed.String(), header)
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to bridge: %w", err)
	}

	var status Frame
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	if err := conn.ReadJSON(&status); err != nil {
		_ = conn.Close() // Ignored on purpose
		return nil, fmt.Errorf("failed to read bridge status frame: %w", err)
	}
	_ = conn.SetReadDeadline(time.Time{})

	if status.Type != frameTypeStatus {
		_ = conn.Close() // Ignored on purpose
		return nil, fmt.Errorf("expected status frame, got %q", status.Type)
	}

	return &Client{
		ws:          conn,
		displayable: status.Displayable,
		interactive: status.Interactive,
	}, nil
}

// probeHealth hits the bridge's /healthz endpoint over plain HTTP before
// committing to the websocket handshake.
func probeHealth(ctx context.Context, bridgeURL *url.URL, header http.Header) error {
	healthURL := *bridgeURL
	switch healthURL.Scheme {
	case "ws":
		healthURL.Scheme = "http"
	case "wss":
		healthURL.Scheme = "https"
	}
	healthURL.Path = strings.TrimSuffix(healthURL.Path, "/") + "/healthz"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	req.Header = header.Clone()

	client := http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach bridge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge reported status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) IsDisplayable() bool {
	return c.displayable
}

func (c *Client) IsInteractive() bool {
	return c.interactive
}

func (c *Client) Dispatch(ctx context.Context, event pointer.TimedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.ws == nil {
		return fmt.Errorf("bridge connection closed")
	}

	if err := c.ws.WriteJSON(frameFor(event)); err != nil {
		return fmt.Errorf("failed to send input frame to bridge: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.closed = true

		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		if writeErr := c.ws.WriteMessage(websocket.CloseMessage, closeMsg); writeErr != nil {
			err = c.ws.Close()
			return
		}
		err = c.ws.Close()
	})
	return err
}
