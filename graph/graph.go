// Package graph plots equations on a pannable and zoomable Cartesian plane, marks where the curves intersect, and annotates probed points.
package graph

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/gcalc/gcalc"
	"github.com/gcalc/gcalc/renderers"
	"github.com/gcalc/gcalc/renderers/rasterizer"
	"go.uber.org/multierr"
)

// Graph owns the viewport, the equations, and the probed points, and redraws everything from scratch after every change. It is not safe for concurrent use.
type Graph struct {
	opts *Options
	log  *slog.Logger

	vp        Viewport
	equations Registry
	annotator Annotator

	dragging bool
	dragPos  gcalc.Point

	// last committed frame
	intersections []Intersection
	frame         *gcalc.Canvas // everything but the hover label
	img           *image.RGBA
}

// New returns a graph of width by height pixels centered on the origin. If opts is nil, DefaultOptions is used.
func New(width, height int, opts *Options) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	g := &Graph{
		opts: opts,
		log:  opts.logger(),
		vp:   NewViewport(width, height, opts.BaseInterval),
	}
	g.refresh()
	return g, nil
}

// Redraw rebuilds the frame: background, grid, curves in ascending id order, intersections, clicks, and the hover label. The new frame is always committed. Equations that fail to evaluate are skipped for the rest of the frame and their editor is marked invalid; the returned error combines one *EvaluationError per failed equation, see multierr.Errors.
func (g *Graph) Redraw() error {
	start := time.Now()
	vp := g.vp
	w, h := float64(vp.Width), float64(vp.Height)

	frame := gcalc.New(w, h)
	ctx := frame.NewContext()
	ctx.SetFillColor(g.opts.Background)
	ctx.FillRect(0.0, 0.0, ctx.Width(), ctx.Height())
	DrawGrid(ctx, vp, g.opts)

	var err error
	curves := []Curve{}
	for _, slot := range g.equations.Live() {
		p, traceErr := TraceCurve(vp, slot.Evaluator)
		DrawCurve(ctx, slot.ID, p, g.opts)
		if traceErr != nil {
			var evalErr *EvaluationError
			if !errors.As(traceErr, &evalErr) {
				evalErr = &EvaluationError{Err: traceErr}
			}
			evalErr.ID = slot.ID
			err = multierr.Append(err, g.fail(evalErr))
			continue
		}
		curves = append(curves, Curve{slot.ID, slot.Evaluator})
	}

	points, errs := FindIntersections(vp, curves, g.opts)
	for _, evalErr := range errs {
		err = multierr.Append(err, g.fail(evalErr))
	}
	DrawIntersections(ctx, vp, points, g.opts)
	g.annotator.DrawClicks(ctx, vp, g.opts)

	overlay := gcalc.New(w, h)
	g.annotator.DrawHover(overlay.NewContext(), g.opts)

	img := rasterizer.Draw(frame, g.opts.Resolution)
	overlay.Render(rasterizer.New(img, g.opts.Resolution))

	g.frame = frame
	g.img = img
	g.intersections = points
	g.log.Debug("redraw", "curves", len(curves), "intersections", len(points), "duration", time.Since(start))
	return err
}

// fail logs the evaluation error and marks the editor of the equation invalid.
func (g *Graph) fail(err *EvaluationError) error {
	g.log.Warn("evaluate equation", "id", err.ID, "x", err.X, "error", err.Err)
	if slot, ok := g.equations.Get(err.ID); ok && slot.Editor != nil {
		slot.Editor.SetInvalid()
	}
	return err
}

// refresh redraws after an event. Evaluation errors are logged by Redraw and have been reported to the editors.
func (g *Graph) refresh() {
	_ = g.Redraw()
}

// Size returns the canvas size in pixels.
func (g *Graph) Size() (int, int) {
	return g.vp.Width, g.vp.Height
}

// Resize changes the canvas size and redraws.
func (g *Graph) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g.vp.Resize(width, height)
	g.refresh()
	return nil
}

// Viewport returns the current viewport.
func (g *Graph) Viewport() Viewport {
	return g.vp
}

// Pan moves the view along with a pointer that moved by (dx,dy) pixels.
func (g *Graph) Pan(dx, dy float64) {
	g.vp.Pan(dx, dy)
	g.refresh()
}

// BeginDrag starts dragging the view at pixel (px,py).
func (g *Graph) BeginDrag(px, py float64) {
	g.dragging = true
	g.dragPos = gcalc.Point{X: px, Y: py}
}

// DragTo pans the view by the pointer movement since the previous drag position. It does nothing when no drag is in progress.
func (g *Graph) DragTo(px, py float64) {
	if !g.dragging {
		return
	}
	pos := gcalc.Point{X: px, Y: py}
	d := pos.Sub(g.dragPos)
	g.dragPos = pos
	g.Pan(d.X, d.Y)
}

// EndDrag ends the current drag.
func (g *Graph) EndDrag() {
	g.dragging = false
}

// Dragging returns true while a drag is in progress.
func (g *Graph) Dragging() bool {
	return g.dragging
}

// ZoomIn multiplies the scale by Options.ZoomFactor.
func (g *Graph) ZoomIn() {
	g.vp.Zoom(g.opts.ZoomFactor, g.opts.MinScale, g.opts.MaxScale)
	g.refresh()
}

// ZoomOut divides the scale by Options.ZoomFactor.
func (g *Graph) ZoomOut() {
	g.vp.Zoom(1.0/g.opts.ZoomFactor, g.opts.MinScale, g.opts.MaxScale)
	g.refresh()
}

// SetScale sets the zoom scale, clamped to [Options.MinScale,Options.MaxScale].
func (g *Graph) SetScale(scale float64) {
	g.vp.SetScale(scale, g.opts.MinScale, g.opts.MaxScale)
	g.refresh()
}

func (g *Graph) Scale() float64 {
	return g.vp.Scale
}

// SetOffset centers the view on graph point (x,y).
func (g *Graph) SetOffset(x, y float64) {
	if !gcalc.IsFinite(x) || !gcalc.IsFinite(y) {
		return
	}
	g.vp.OffsetX, g.vp.OffsetY = x, y
	g.refresh()
}

// Offset returns the graph point at the center of the view.
func (g *Graph) Offset() (float64, float64) {
	return g.vp.OffsetX, g.vp.OffsetY
}

// EquationAdded stores an equation at id and redraws. The editor may be nil.
func (g *Graph) EquationAdded(id int, ev Evaluator, ed Editor) error {
	if err := g.equations.Add(id, ev, ed); err != nil {
		return err
	}
	g.refresh()
	return nil
}

// EquationRemoved clears the slot at id and redraws. The other equations keep their ids.
func (g *Graph) EquationRemoved(id int) {
	g.equations.Remove(id)
	g.refresh()
}

// EquationChanged replaces the evaluator of the equation at id and redraws.
func (g *Graph) EquationChanged(id int, ev Evaluator) error {
	if err := g.equations.Change(id, ev); err != nil {
		return err
	}
	g.refresh()
	return nil
}

// RenumberEquation moves the equation at from to id to, replacing any equation there, and redraws.
func (g *Graph) RenumberEquation(from, to int) error {
	if err := g.equations.Renumber(from, to); err != nil {
		return err
	}
	g.refresh()
	return nil
}

// Equations returns the stored equations in ascending id order.
func (g *Graph) Equations() []Slot {
	return g.equations.Live()
}

// Click records a probe at pixel (px,py) and redraws.
func (g *Graph) Click(px, py float64) Probe {
	probe := g.annotator.Click(g.vp, px, py)
	g.log.Debug("click", "px", px, "py", py, "x", probe.Graph.X, "y", probe.Graph.Y)
	g.refresh()
	return probe
}

// Hover moves the hover label to pixel (px,py) and redraws. Hovering the same pixel of an unchanged view does not redraw.
func (g *Graph) Hover(px, py float64) Probe {
	if prev, ok := g.annotator.Hovered(); ok && prev.Pixel.Equals(gcalc.Point{X: px, Y: py}) && prev.Graph.Equals(g.vp.ToGraph(px, py)) {
		return prev
	}
	probe := g.annotator.Hover(g.vp, px, py)
	g.refresh()
	return probe
}

// ClearHover removes the hover label and redraws.
func (g *Graph) ClearHover() {
	g.annotator.ClearHover()
	g.refresh()
}

// ClearClicks removes all clicked points and redraws.
func (g *Graph) ClearClicks() {
	g.annotator.ClearClicks()
	g.refresh()
}

// Clicks returns the clicked points in click order.
func (g *Graph) Clicks() []Probe {
	return g.annotator.Clicks()
}

// Hovered returns the hover position, if any.
func (g *Graph) Hovered() (Probe, bool) {
	return g.annotator.Hovered()
}

// Intersections returns the intersections of the last frame.
func (g *Graph) Intersections() []Intersection {
	return append([]Intersection{}, g.intersections...)
}

// Image returns the raster image of the last frame. It must not be modified.
func (g *Graph) Image() *image.RGBA {
	return g.img
}

// Canvas returns the drawing operations of the last frame, excluding the hover label.
func (g *Graph) Canvas() *gcalc.Canvas {
	return g.frame
}

// Export writes the last frame, excluding the hover label, using the given writer, such as svg.Writer(nil).
func (g *Graph) Export(w io.Writer, writer gcalc.Writer) error {
	if err := g.frame.Write(w, writer); err != nil {
		g.log.Error("export", "error", err)
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportFile writes the last frame, excluding the hover label, to filename. The format follows from the file extension, see renderers.Write.
func (g *Graph) ExportFile(filename string, opts ...interface{}) error {
	if err := renderers.Write(filename, g.frame, opts...); err != nil {
		g.log.Error("export", "filename", filename, "error", err)
		return fmt.Errorf("export %v: %w", filename, err)
	}
	g.log.Info("export", "filename", filename)
	return nil
}
