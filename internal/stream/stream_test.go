package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"raycaster/internal/scene"
	"raycaster/internal/world"
)

func smallServer() *Server {
	cfg := scene.DefaultConfig()
	cfg.Width, cfg.Height = 64, 32
	r := scene.NewRenderer(world.Arena(), cfg.Palette(), cfg)
	return NewServer(r, scene.NewAnimator(scene.Pose{X: 2.5, Y: 2.5, Heading: 0}, 36), 5*time.Millisecond)
}

func TestNextFrameAdvancesAnimation(t *testing.T) {
	s := smallServer()
	h0, f0, err := s.NextFrame()
	if err != nil {
		t.Fatal(err)
	}
	h1, _, err := s.NextFrame()
	if err != nil {
		t.Fatal(err)
	}
	if h0.Frame != 0 || h1.Frame != 1 || !(h1.Heading > h0.Heading) {
		t.Fatalf("unexpected headers %+v %+v", h0, h1)
	}
	if !bytes.HasPrefix(f0, []byte("P6\n64 32\n255\n")) || len(f0) != len("P6\n64 32\n255\n")+64*32*3 {
		t.Fatalf("unexpected frame encoding, %d bytes", len(f0))
	}
	if h0.Hits != 32 {
		t.Fatalf("closed arena should stop every ray, got %d hits", h0.Hits)
	}
}

func TestStreamDeliversFrames(t *testing.T) {
	s := smallServer()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	kind, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if kind != websocket.TextMessage {
		t.Fatalf("expected text header, got kind %d", kind)
	}
	var hdr FrameHeader
	if err := json.Unmarshal(data, &hdr); err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if hdr.Width != 64 || hdr.Height != 32 {
		t.Fatalf("unexpected header %+v", hdr)
	}

	kind, data, err = ws.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if kind != websocket.BinaryMessage || !bytes.HasPrefix(data, []byte("P6\n")) {
		t.Fatalf("expected binary PPM frame, got kind %d", kind)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	h := NewHub()
	c := &Connection{send: make(chan message, 2)}
	h.Add(c)
	h.Broadcast([]byte("{}"), []byte("P6"))
	if h.Len() != 1 || len(c.send) != 2 {
		t.Fatal("first broadcast should fit the queue")
	}
	h.Broadcast([]byte("{}"), []byte("P6"))
	if h.Len() != 0 {
		t.Fatal("a full queue should drop the client")
	}
	n := 0
	for range c.send {
		n++
	}
	if n != 2 {
		t.Fatalf("queued messages should still drain after drop, got %d", n)
	}
	h.Remove(c)
}
