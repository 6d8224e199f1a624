package graph

import (
	"math"
	"strconv"

	"github.com/gcalc/gcalc"
)

// DrawGrid draws the axes through the origin and a dashed grid line for every visible grid step. The grid step is one graph unit, so there is a line per visible integer, until lines would come closer than Options.GridMinSpacing pixels; from there on the step is the smallest power of ten that keeps them apart. Each grid line is labeled with its value next to the axis, except the ones coinciding with the axes. The visible area is derived from the viewport on every call.
func DrawGrid(ctx *gcalc.Context, vp Viewport, opts *Options) {
	w, h := float64(vp.Width), float64(vp.Height)
	origin := vp.ToPixel(0.0, 0.0)

	ctx.Push()
	defer ctx.Pop()
	ctx.SetStrokeColor(opts.AxisColor)
	ctx.SetFillColor(opts.AxisColor)
	ctx.SetFontSize(opts.FontSize)

	ctx.SetStrokeWidth(opts.AxisWidth)
	ctx.SetDashes(0.0)
	ctx.DrawLine(0.0, origin.Y, w, origin.Y)
	ctx.DrawLine(origin.X, 0.0, origin.X, h)

	ctx.SetStrokeWidth(opts.GridWidth)
	ctx.SetDashes(0.0, gridDashes(opts.GridDashes, vp.Scale)...)
	step := gridStep(vp.Unit(), opts.GridMinSpacing)
	bounds := vp.Bounds()
	for _, gx := range gridLines(bounds.X, bounds.X+bounds.W, step) {
		x := vp.ToPixel(gx, 0.0).X
		ctx.DrawLine(x, 0.0, x, h)
		if gx != 0.0 {
			ctx.DrawText(x+opts.LabelOffset.X, origin.Y+opts.LabelOffset.Y, gridLabel(gx))
		}
	}
	for _, gy := range gridLines(bounds.Y, bounds.Y+bounds.H, step) {
		y := vp.ToPixel(0.0, gy).Y
		ctx.DrawLine(0.0, y, w, y)
		if gy != 0.0 {
			ctx.DrawText(origin.X+opts.LabelOffset.X, y+opts.LabelOffset.Y, gridLabel(gy))
		}
	}
}

// gridStep returns the distance in graph units between grid lines. It is one, or the smallest power of ten that keeps the lines at least spacing pixels apart.
func gridStep(unit, spacing float64) float64 {
	step := 1.0
	if unit <= 0.0 || spacing <= 0.0 || math.IsInf(unit, 0) {
		return step
	}
	for step*unit < spacing {
		step *= 10.0
	}
	return step
}

// gridLines returns the multiples of step in [floor(lo), ceil(hi)].
func gridLines(lo, hi, step float64) []float64 {
	if !gcalc.IsFinite(lo) || !gcalc.IsFinite(hi) {
		return nil
	}
	lines := []float64{}
	for k, end := math.Floor(lo/step), math.Ceil(hi/step); k <= end; k++ {
		lines = append(lines, k*step)
		if k+1.0 == k {
			break
		}
	}
	return lines
}

// gridDashes scales the dash pattern with the zoom. Patterns shorter than a pixel are drawn solid.
func gridDashes(dashes []float64, scale float64) []float64 {
	scaled := make([]float64, len(dashes))
	period := 0.0
	for i, dash := range dashes {
		scaled[i] = dash * scale
		period += scaled[i]
	}
	if period < 1.0 {
		return nil
	}
	return scaled
}

func gridLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
