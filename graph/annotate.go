package graph

import (
	"fmt"

	"github.com/gcalc/gcalc"
)

// Probe is a pointer position captured in both pixel and graph coordinates.
type Probe struct {
	Pixel gcalc.Point
	Graph gcalc.Point
}

// Label returns the graph coordinates formatted as (x, y).
func (p Probe) Label() string {
	return label(p.Graph)
}

func label(p gcalc.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Annotator keeps the clicked points, in order, and the latest hover position.
type Annotator struct {
	clicks   []Probe
	hover    Probe
	hovering bool
}

// Click records a click at pixel (px,py).
func (a *Annotator) Click(vp Viewport, px, py float64) Probe {
	probe := Probe{gcalc.Point{X: px, Y: py}, vp.ToGraph(px, py)}
	a.clicks = append(a.clicks, probe)
	return probe
}

// Hover replaces the hover position with pixel (px,py).
func (a *Annotator) Hover(vp Viewport, px, py float64) Probe {
	a.hover = Probe{gcalc.Point{X: px, Y: py}, vp.ToGraph(px, py)}
	a.hovering = true
	return a.hover
}

func (a *Annotator) ClearClicks() {
	a.clicks = a.clicks[:0]
}

func (a *Annotator) ClearHover() {
	a.hovering = false
}

// Clicks returns the clicked points in the order they were clicked.
func (a *Annotator) Clicks() []Probe {
	return append([]Probe{}, a.clicks...)
}

// Hovered returns the hover position, if any.
func (a *Annotator) Hovered() (Probe, bool) {
	return a.hover, a.hovering
}

// DrawClicks draws a marker and a coordinate label for every click. Markers stay at their graph coordinates and follow the viewport.
func (a *Annotator) DrawClicks(ctx *gcalc.Context, vp Viewport, opts *Options) {
	ctx.Push()
	defer ctx.Pop()
	ctx.SetFillColor(opts.ClickColor)
	ctx.SetFontSize(opts.FontSize)
	for _, click := range a.clicks {
		drawMarker(ctx, vp.ToPixel(click.Graph.X, click.Graph.Y), opts.ClickSize, click.Label())
	}
}

// DrawHover draws the coordinate label of the hover position, without a marker.
func (a *Annotator) DrawHover(ctx *gcalc.Context, opts *Options) {
	if !a.hovering {
		return
	}
	ctx.Push()
	defer ctx.Pop()
	ctx.SetFillColor(opts.HoverColor)
	ctx.SetFontSize(opts.FontSize)
	pos := a.hover.Pixel.Add(opts.HoverOffset)
	ctx.DrawText(pos.X, pos.Y, a.hover.Label())
}

// DrawIntersections draws a marker and a coordinate label for every intersection.
func DrawIntersections(ctx *gcalc.Context, vp Viewport, points []Intersection, opts *Options) {
	ctx.Push()
	defer ctx.Pop()
	ctx.SetFillColor(opts.IntersectionColor)
	ctx.SetFontSize(opts.FontSize)
	for _, p := range points {
		drawMarker(ctx, vp.ToPixel(p.X, p.Y), opts.IntersectionSize, label(p.Point()))
	}
}

// drawMarker draws a dot of the given diameter with the text to its upper right.
func drawMarker(ctx *gcalc.Context, pos gcalc.Point, size float64, text string) {
	ctx.FillOval(pos.X, pos.Y, size/2.0, size/2.0)
	ctx.DrawText(pos.X+size, pos.Y-size, text)
}
