//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"raycaster/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
)

// HUD renders the render settings and viewer pose to the right of the frame.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update replaces the snapshot shown on the next Draw.
func (h *HUD) Update(s core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = s
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, hudPadding, y, color.RGBA{R: 200, G: 200, B: 120, A: 255})
		y += hudLineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, fmt.Sprintf("%-8s %s", p.Label, p.Value), face, hudPadding+8, y, color.White)
			y += hudLineHeight
		}
		y += hudLineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
