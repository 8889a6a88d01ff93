// Package scene draws complete frames: the top-down map overlay and the
// projected 3D view.
package scene

import (
	"golang.org/x/sync/errgroup"

	"raycaster/internal/core"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/world"
)

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Hits    int
	Columns []raycast.Hit
}

// Layout is the pixel geometry derived from a Config and a map.
type Layout struct {
	MapWidth      int // pixel width of the overlay region; 0 without overlay
	TileW, TileH  int
	ViewportX     int
	ViewportWidth int
	ViewportH     int
}

// Renderer draws frames of a fixed map. It holds no per-frame state and may be
// shared by goroutines rendering into distinct framebuffers.
type Renderer struct {
	cfg     Config
	m       *world.Map
	palette []core.Pixel
	layout  Layout
}

// NewRenderer binds a map and palette to a configuration. Every wall type in
// the map must have a palette entry.
func NewRenderer(m *world.Map, palette []core.Pixel, cfg Config) *Renderer {
	core.Require(m.WallTypes() <= len(palette), "map %q uses %d wall types, palette has %d", m.Name, m.WallTypes(), len(palette))
	core.Require(cfg.Width > 0 && cfg.Height > 0, "frame size %dx%d must be positive", cfg.Width, cfg.Height)
	core.Require(cfg.Step > 0, "ray step %v must be positive", cfg.Step)
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Renderer{cfg: cfg, m: m, palette: palette, layout: computeLayout(cfg, m)}
}

func computeLayout(cfg Config, m *world.Map) Layout {
	l := Layout{ViewportWidth: cfg.Width, ViewportH: cfg.Height}
	if cfg.Overlay {
		l.MapWidth = cfg.Width / 2
		l.TileW = l.MapWidth / m.Width()
		l.TileH = cfg.Height / m.Height()
		l.ViewportX = l.MapWidth
		l.ViewportWidth = cfg.Width - l.MapWidth
	}
	return l
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Layout returns the pixel geometry of a frame.
func (r *Renderer) Layout() Layout { return r.layout }

// Map returns the map being rendered.
func (r *Renderer) Map() *world.Map { return r.m }

// NewFramebuffer allocates a buffer sized for this renderer.
func (r *Renderer) NewFramebuffer() *render.Framebuffer {
	return render.NewFramebuffer(r.cfg.Width, r.cfg.Height, r.cfg.Background)
}

// ColumnAngle returns the ray angle for viewport column c: a linear sweep from
// heading-fov/2 at the left edge towards heading+fov/2.
func (r *Renderer) ColumnAngle(p Pose, c int) float64 {
	return p.Heading - r.cfg.FOV/2 + r.cfg.FOV*(float64(c)/float64(r.layout.ViewportWidth))
}

func (r *Renderer) ray(p Pose, c int) raycast.Ray {
	return raycast.Ray{
		Origin:      core.Vec{X: p.X, Y: p.Y},
		Angle:       r.ColumnAngle(p, c),
		Step:        r.cfg.Step,
		MaxDistance: r.cfg.MaxDistance,
	}
}

// Render overwrites fb with the frame seen from p.
func (r *Renderer) Render(fb *render.Framebuffer, p Pose) FrameStats {
	core.Require(fb.Width() == r.cfg.Width && fb.Height() == r.cfg.Height,
		"framebuffer %dx%d does not match config %dx%d", fb.Width(), fb.Height(), r.cfg.Width, r.cfg.Height)

	fb.Clear(r.cfg.Background)
	if r.cfg.Overlay {
		r.drawMap(fb)
	}
	stats := FrameStats{Columns: make([]raycast.Hit, r.layout.ViewportWidth)}
	r.drawColumns(fb, p, stats.Columns)
	for _, h := range stats.Columns {
		if h.Hit {
			stats.Hits++
		}
	}
	if r.cfg.Overlay {
		if r.cfg.DrawCone {
			r.drawCone(fb, p, stats.Columns)
		}
		r.drawMarker(fb, p)
	}
	return stats
}

func (r *Renderer) drawMap(fb *render.Framebuffer) {
	l := r.layout
	for row := 0; row < r.m.Height(); row++ {
		for col := 0; col < r.m.Width(); col++ {
			c := r.m.CellAt(col, row)
			if !c.IsWall() {
				continue
			}
			fb.FillRect(col*l.TileW, row*l.TileH, l.TileW, l.TileH, r.palette[c.Type()])
		}
	}
}

// drawColumns marches one ray per viewport column. Columns are split into
// contiguous ranges, one per worker; each worker writes only its own hits
// entries and its own framebuffer columns.
func (r *Renderer) drawColumns(fb *render.Framebuffer, p Pose, hits []raycast.Hit) {
	n := len(hits)
	workers := r.cfg.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		r.drawColumnRange(fb, p, hits, 0, n)
		return
	}
	span := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += span {
		start, end := start, min(start+span, n)
		g.Go(func() error {
			r.drawColumnRange(fb, p, hits, start, end)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) drawColumnRange(fb *render.Framebuffer, p Pose, hits []raycast.Hit, start, end int) {
	l := r.layout
	for c := start; c < end; c++ {
		h := raycast.March(r.m, r.ray(p, c))
		hits[c] = h
		if !h.Hit {
			continue
		}
		height := raycast.SlabHeight(l.ViewportH, h.Distance)
		if height > float64(l.ViewportH) {
			height = float64(l.ViewportH)
		}
		px := int(height)
		fb.FillRect(l.ViewportX+c, l.ViewportH/2-px/2, 1, px, r.palette[h.WallType])
	}
}

// drawCone plots every ray sample that lands inside the overlay, up to and
// including the point where the ray stopped.
func (r *Renderer) drawCone(fb *render.Framebuffer, p Pose, hits []raycast.Hit) {
	l := r.layout
	plot := func(x, y float64) {
		if !r.m.Contains(x, y) {
			return
		}
		px, py := int(x*float64(l.TileW)), int(y*float64(l.TileH))
		if px < l.MapWidth && py < r.cfg.Height {
			fb.SetPixel(px, py, r.cfg.ConeColor)
		}
	}
	for c, h := range hits {
		raycast.Trace(r.ray(p, c), h.Distance, plot)
	}
}

func (r *Renderer) drawMarker(fb *render.Framebuffer, p Pose) {
	size := r.cfg.MarkerSize
	if size <= 0 || !r.m.Contains(p.X, p.Y) {
		return
	}
	l := r.layout
	cx := int(p.X * float64(l.TileW))
	cy := int(p.Y * float64(l.TileH))
	x, y, w, h := clipRect(cx-size/2, cy-size/2, size, size, l.MapWidth, r.cfg.Height)
	fb.FillRect(x, y, w, h, r.cfg.ConeColor)
}

// clipRect intersects a rectangle with [0,maxW)x[0,maxH). The result may be
// empty but is always safe to pass to FillRect.
func clipRect(x, y, w, h, maxW, maxH int) (int, int, int, int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, maxW), min(y+h, maxH)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0
	}
	return x0, y0, x1 - x0, y1 - y0
}
