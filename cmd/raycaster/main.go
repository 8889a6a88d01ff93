// Command raycaster renders the spinning-viewer animation to numbered PPM
// files and records each frame in a render log.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"raycaster/internal/app"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/store"
)

type frameResult struct {
	index int
	rec   store.FrameRecord
	err   error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", ".", "directory for the numbered .ppm frames")
	frames := flag.Int("frames", 360, "number of frames to render")
	workers := flag.Int("workers", runtime.NumCPU(), "number of frames rendered concurrently")
	storeKind := flag.String("store", "json", "render log backend: json, postgres or none")
	storeTarget := flag.String("db", "", "render log file (json) or connection string (postgres); defaults to <out>/renders.json or $DATABASE_URL")
	run := flag.String("run", "", "render log run name (default: timestamp)")
	flag.Parse()

	renderer, animator, err := cfg.Scene()
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	var rlog store.Storage
	if *storeKind != "none" {
		rlog, err = store.Open(*storeKind, storeTargetFor(*storeKind, *storeTarget, *out))
		if err != nil {
			log.Fatalf("failed to open render log: %v", err)
		}
		defer rlog.Close()
	}
	if *run == "" {
		*run = time.Now().UTC().Format("20060102T150405Z")
	}

	log.Printf("Rendering %d frames of %q (%d workers) into %s", *frames, renderer.Map().Name, *workers, *out)
	start := time.Now()
	if err := renderAll(renderer, animator, *out, *run, *frames, *workers, rlog); err != nil {
		log.Fatal(err)
	}
	log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))
}

func storeTargetFor(kind, target, out string) string {
	if target != "" {
		return target
	}
	if kind == "postgres" {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			return dsn
		}
		return "host=localhost user=raycaster password=raycaster dbname=raycaster sslmode=disable"
	}
	return filepath.Join(out, "renders.json")
}

// renderAll fans frame indices out to workers. Each worker owns one
// framebuffer; the renderer itself is shared read-only.
func renderAll(r *scene.Renderer, a scene.Animator, out, run string, frames, workers int, rlog store.Storage) error {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int)
	results := make(chan frameResult)

	for i := 0; i < workers; i++ {
		go func() {
			fb := r.NewFramebuffer()
			for index := range jobs {
				results <- renderFrame(r, a, fb, out, run, index)
			}
		}()
	}

	go func() {
		for i := 0; i < frames; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var firstErr error
	for i := 0; i < frames; i++ {
		res := <-results
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if rlog != nil {
			if err := rlog.SaveFrame(res.rec); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to log frame %d: %w", res.index, err)
			}
		}
	}
	return firstErr
}

func renderFrame(r *scene.Renderer, a scene.Animator, fb *render.Framebuffer, out, run string, index int) frameResult {
	pose := a.PoseAt(index)
	stats := r.Render(fb, pose)
	path := filepath.Join(out, render.FrameName(index))
	if err := render.WritePPM(path, fb); err != nil {
		return frameResult{index: index, err: err}
	}
	return frameResult{index: index, rec: store.FrameRecord{
		Run: run, Frame: index, X: pose.X, Y: pose.Y, Heading: pose.Heading,
		Path: path, Hits: stats.Hits, RenderedAt: time.Now().UTC(),
	}}
}
