//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"raycaster/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 30, "animation frames per second")
	flag.Parse()

	renderer, animator, err := cfg.Scene()
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}

	game := app.New(renderer, animator, *fps)
	rc := renderer.Config()

	ebiten.SetWindowTitle("raycaster: " + renderer.Map().Name)
	ebiten.SetWindowSize(rc.Width+app.HUDWidth, rc.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
