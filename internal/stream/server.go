package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"raycaster/internal/render"
	"raycaster/internal/scene"
)

// FrameHeader precedes every binary frame on the wire.
type FrameHeader struct {
	Frame   int     `json:"frame"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
	Hits    int     `json:"hits"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
}

// Server renders the animation on a fixed interval and streams each frame as
// a PPM image to every websocket client.
type Server struct {
	renderer *scene.Renderer
	animator scene.Animator
	hub      *Hub
	interval time.Duration
	buffer   int
	upgrader websocket.Upgrader

	fb    *render.Framebuffer
	frame int
}

// NewServer builds a server that renders one frame per interval.
func NewServer(r *scene.Renderer, a scene.Animator, interval time.Duration) *Server {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Server{
		renderer: r,
		animator: a,
		hub:      NewHub(),
		interval: interval,
		buffer:   16,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		fb: r.NewFramebuffer(),
	}
}

// Hub exposes the client registry.
func (s *Server) Hub() *Hub { return s.hub }

// Handler returns the HTTP routes: /ws upgrades to a frame stream.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: failed to upgrade connection: %v", err)
		return
	}
	conn := NewConnection(ws, s.buffer)
	s.hub.Add(conn)
	log.Printf("stream: client %s connected", ws.RemoteAddr())

	go conn.WritePump()
	conn.ReadPump()

	s.hub.Remove(conn)
	log.Printf("stream: client %s disconnected", ws.RemoteAddr())
}

// NextFrame renders the next animation frame and returns its header and PPM
// encoding. It is not safe for concurrent use; Run is its only caller.
func (s *Server) NextFrame() (FrameHeader, []byte, error) {
	pose := s.animator.PoseAt(s.frame)
	stats := s.renderer.Render(s.fb, pose)
	hdr := FrameHeader{
		Frame: s.frame, X: pose.X, Y: pose.Y, Heading: pose.Heading,
		Hits: stats.Hits, Width: s.fb.Width(), Height: s.fb.Height(),
	}
	s.frame++

	var buf bytes.Buffer
	if err := render.EncodePPM(&buf, s.fb.Pixels(), s.fb.Width(), s.fb.Height()); err != nil {
		return hdr, nil, err
	}
	return hdr, buf.Bytes(), nil
}

// Run renders and broadcasts frames until ctx is cancelled. Frames are only
// rendered while at least one client is connected.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if s.hub.Len() == 0 {
			continue
		}
		hdr, frame, err := s.NextFrame()
		if err != nil {
			return err
		}
		header, err := json.Marshal(hdr)
		if err != nil {
			return err
		}
		s.hub.Broadcast(header, frame)
	}
}
