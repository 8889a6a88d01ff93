//go:build ebiten

package app

import (
	"raycaster/internal/core"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUDWidth is the width of the parameter panel right of the frame.
const HUDWidth = 200

// Game adapts a scene renderer to the ebiten.Game interface. The viewer turns
// on its own; there is no steering.
type Game struct {
	renderer *scene.Renderer
	animator scene.Animator
	clock    *core.FixedStep
	hud      *ui.HUD

	fb    *render.Framebuffer
	img   *ebiten.Image
	buf   []byte
	frame int
}

// New constructs a Game that advances the animation at fps frames per second.
func New(r *scene.Renderer, a scene.Animator, fps int) *Game {
	fb := r.NewFramebuffer()
	return &Game{
		renderer: r,
		animator: a,
		clock:    core.NewFixedStep(fps),
		hud:      ui.NewHUD(HUDWidth),
		fb:       fb,
		img:      ebiten.NewImage(fb.Width(), fb.Height()),
		buf:      make([]byte, 4*len(fb.Pixels())),
	}
}

// Update advances the animation by however many frames are due.
func (g *Game) Update() error {
	g.frame += g.clock.Steps()
	g.hud.Update(g.renderer.Config().Parameters(g.animator.PoseAt(g.frame)))
	return nil
}

// Draw renders the current frame and uploads it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.fb, g.animator.PoseAt(g.frame))
	render.FillRGBA(g.buf, g.fb.Pixels())
	g.img.WritePixels(g.buf)
	screen.DrawImage(g.img, nil)
	g.hud.Draw(screen, g.fb.Width(), g.fb.Height())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width() + HUDWidth, g.fb.Height()
}
