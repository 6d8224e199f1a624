package graph

import (
	"github.com/gcalc/gcalc"
)

// TraceCurve samples the primary branch of ev at every pixel column x = 0, 1, ..., width-1 and joins consecutive defined samples by straight lines in pixel space. A domain gap ends the polyline, the next defined sample starts a new one. When the evaluator fails, tracing stops and the path traced so far is returned together with an *EvaluationError whose ID is left for the caller to set.
func TraceCurve(vp Viewport, ev Evaluator) (*gcalc.Path, error) {
	p := &gcalc.Path{}
	connected := false
	for px := 0; px < vp.Width; px++ {
		gx := vp.ToGraph(float64(px), 0.0).X
		gy, ok, err := primary(ev, gx)
		if err != nil {
			return p, &EvaluationError{X: gx, Err: err}
		}

		pos := vp.ToPixel(gx, gy)
		if !ok || !pos.IsFinite() {
			connected = false
			continue
		}
		pos.X = float64(px)
		if connected {
			p.LineTo(pos.X, pos.Y)
		} else {
			p.MoveTo(pos.X, pos.Y)
			connected = true
		}
	}
	return p, nil
}

// DrawCurve strokes a traced curve in the palette color of its equation id.
func DrawCurve(ctx *gcalc.Context, id int, p *gcalc.Path, opts *Options) {
	ctx.Push()
	defer ctx.Pop()
	ctx.SetStrokeColor(opts.Palette.At(id))
	ctx.SetStrokeWidth(opts.CurveWidth)
	ctx.SetDashes(0.0)
	ctx.DrawPath(p)
}
