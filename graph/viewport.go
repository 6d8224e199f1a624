package graph

import (
	"math"

	"github.com/gcalc/gcalc"
)

// Viewport maps between graph space, with y pointing up, and pixel space, with the origin in the top-left corner and y pointing down. The graph point (OffsetX,OffsetY) is shown at the center of the canvas.
type Viewport struct {
	OffsetX, OffsetY float64
	Scale            float64
	Width, Height    int
	BaseInterval     float64
}

// NewViewport returns a viewport of width by height pixels centered on the origin at scale 1.
func NewViewport(width, height int, baseInterval float64) Viewport {
	return Viewport{
		Scale:        1.0,
		Width:        width,
		Height:       height,
		BaseInterval: baseInterval,
	}
}

// Unit returns the number of pixels per graph unit.
func (vp Viewport) Unit() float64 {
	return vp.BaseInterval * vp.Scale
}

// ToPixel converts graph coordinates to pixel coordinates.
func (vp Viewport) ToPixel(gx, gy float64) gcalc.Point {
	unit := vp.Unit()
	return gcalc.Point{
		X: float64(vp.Width)/2.0 + (gx-vp.OffsetX)*unit,
		Y: float64(vp.Height)/2.0 - (gy-vp.OffsetY)*unit,
	}
}

// ToGraph converts pixel coordinates to graph coordinates and is the inverse of ToPixel.
func (vp Viewport) ToGraph(px, py float64) gcalc.Point {
	unit := vp.Unit()
	return gcalc.Point{
		X: vp.OffsetX + (px-float64(vp.Width)/2.0)/unit,
		Y: vp.OffsetY + (float64(vp.Height)/2.0-py)/unit,
	}
}

// Pan moves the view along with a pointer that moved by (dx,dy) pixels, so that the graph point under the pointer stays under it.
func (vp *Viewport) Pan(dx, dy float64) {
	unit := vp.Unit()
	vp.OffsetX -= dx / unit
	vp.OffsetY += dy / unit
}

// Zoom multiplies the scale by f and clamps it to [lo,hi].
func (vp *Viewport) Zoom(f, lo, hi float64) {
	vp.SetScale(vp.Scale*f, lo, hi)
}

// SetScale sets the scale clamped to [lo,hi]. NaN is ignored.
func (vp *Viewport) SetScale(scale, lo, hi float64) {
	if math.IsNaN(scale) {
		return
	}
	vp.Scale = math.Max(lo, math.Min(hi, scale))
}

// Resize changes the canvas size, keeping the center of the view.
func (vp *Viewport) Resize(width, height int) {
	vp.Width = width
	vp.Height = height
}

// Bounds returns the visible rectangle in graph coordinates.
func (vp Viewport) Bounds() gcalc.Rect {
	p0 := vp.ToGraph(0.0, float64(vp.Height))
	p1 := vp.ToGraph(float64(vp.Width), 0.0)
	return gcalc.Rect{X: p0.X, Y: p0.Y, W: p1.X - p0.X, H: p1.Y - p0.Y}
}
