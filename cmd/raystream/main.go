// Command raystream serves the spinning-viewer animation as a websocket frame
// stream on /ws.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"raycaster/internal/app"
	"raycaster/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", "", "listen address (default :$PORT or :8080)")
	fps := flag.Int("fps", 15, "frames streamed per second")
	flag.Parse()

	if *addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		*addr = ":" + port
	}
	if *fps <= 0 {
		*fps = 15
	}

	renderer, animator, err := cfg.Scene()
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := stream.NewServer(renderer, animator, time.Second/time.Duration(*fps))
	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}

	go func() {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("stream stopped: %v", err)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	log.Printf("Streaming %q on %s/ws", renderer.Map().Name, *addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
