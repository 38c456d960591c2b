package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rastkol/swipe-core/core/pointer"
)

type fakeBridge struct {
	server   *httptest.Server
	upgrader websocket.Upgrader

	status  Frame
	healthy bool
	done    chan struct{}

	mu       sync.Mutex
	received []Frame
}

func newFakeBridge(t *testing.T, status Frame, healthy bool) *fakeBridge {
	t.Helper()

	bridge := &fakeBridge{status: status, healthy: healthy, done: make(chan struct{})}
	bridge.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			if !bridge.healthy {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		conn, err := bridge.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer close(bridge.done)
		defer conn.Close()

		if err := conn.WriteJSON(bridge.status); err != nil {
			return
		}
		for {
			var frame Frame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			bridge.mu.Lock()
			bridge.received = append(bridge.received, frame)
			bridge.mu.Unlock()
		}
	}))
	t.Cleanup(bridge.server.Close)

	return bridge
}

func (b *fakeBridge) url() string {
	return "ws" + strings.TrimPrefix(b.server.URL, "http")
}

func (b *fakeBridge) frames() []Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Frame(nil), b.received...)
}

func TestDialReadsStatusFrame(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "status", Displayable: true, Interactive: true}, true)

	client, err := Dial(context.Background(), bridge.url())
	if err != nil {
		t.Fatalf("expected dial to succeed, got %v", err)
	}
	defer client.Close()

	if !client.IsDisplayable() {
		t.Fatalf("expected client to be displayable")
	}
	if !client.IsInteractive() {
		t.Fatalf("expected client to be interactive")
	}
}

func TestDialSurfacesDisabledBridge(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "status", Displayable: true, Interactive: false}, true)

	client, err := Dial(context.Background(), bridge.url())
	if err != nil {
		t.Fatalf("expected dial to succeed, got %v", err)
	}
	defer client.Close()

	if !client.IsDisplayable() {
		t.Fatalf("expected client to be displayable")
	}
	if client.IsInteractive() {
		t.Fatalf("expected client to not be interactive")
	}
}

func TestDialFailsWhenBridgeUnhealthy(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "status"}, false)

	if _, err := Dial(context.Background(), bridge.url()); err == nil {
		t.Fatalf("expected dial to fail on unhealthy bridge")
	}
}

func TestDialRejectsUnexpectedFirstFrame(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "input"}, true)

	if _, err := Dial(context.Background(), bridge.url()); err == nil {
		t.Fatalf("expected dial to reject a non-status first frame")
	}
}

func TestDispatchForwardsFramesInOrder(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "status", Displayable: true, Interactive: true}, true)

	client, err := Dial(context.Background(), bridge.url())
	if err != nil {
		t.Fatalf("expected dial to succeed, got %v", err)
	}

	events := []pointer.TimedEvent{
		{Kind: pointer.KindDown, Position: pointer.Point{X: 10, Y: 20}, DownTime: 100, EventTime: 100},
		{Kind: pointer.KindMove, Position: pointer.Point{X: 14.5, Y: 20}, DownTime: 100, EventTime: 112},
		{Kind: pointer.KindUp, Position: pointer.Point{X: 42, Y: 20}, DownTime: 100, EventTime: 230},
	}
	for _, event := range events {
		if err := client.Dispatch(context.Background(), event); err != nil {
			t.Fatalf("expected dispatch to succeed, got %v", err)
		}
	}
	if err := client.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}

	<-bridge.done

	frames := bridge.frames()
	if len(frames) != len(events) {
		t.Fatalf("expected %d frames, got %d", len(events), len(frames))
	}
	for i, event := range events {
		frame := frames[i]
		if frame.Type != "input" {
			t.Fatalf("expected input frame at %d, got %q", i, frame.Type)
		}
		if frame.Kind != string(event.Kind) {
			t.Fatalf("expected kind %q at %d, got %q", event.Kind, i, frame.Kind)
		}
		if frame.X != event.Position.X || frame.Y != event.Position.Y {
			t.Fatalf("expected position (%v, %v) at %d, got (%v, %v)",
				event.Position.X, event.Position.Y, i, frame.X, frame.Y)
		}
		if frame.EventTime != event.EventTime {
			t.Fatalf("expected event time %d at %d, got %d", event.EventTime, i, frame.EventTime)
		}
	}
}

func TestDispatchFailsAfterClose(t *testing.T) {
	bridge := newFakeBridge(t, Frame{Type: "status", Displayable: true, Interactive: true}, true)

	client, err := Dial(context.Background(), bridge.url())
	if err != nil {
		t.Fatalf("expected dial to succeed, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}

	event := pointer.TimedEvent{Kind: pointer.KindDown, Position: pointer.Point{X: 1, Y: 1}}
	if err := client.Dispatch(context.Background(), event); err == nil {
		t.Fatalf("expected dispatch to fail after close")
	}
}

func TestFrameSchemaDescribesWireFields(t *testing.T) {
	schema := FrameSchema()
	if schema == nil {
		t.Fatalf("expected a schema")
	}

	for _, field := range []string{"type", "kind", "x", "y", "downTime", "eventTime"} {
		if _, ok := schema.Properties.Get(field); !ok {
			t.Fatalf("expected schema to describe %q", field)
		}
	}
}
