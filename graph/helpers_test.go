package graph

import (
	"errors"
	"math"

	"github.com/gcalc/gcalc"
)

type recordedPath struct {
	path  *gcalc.Path
	style gcalc.Style
}

type recordedOval struct {
	center gcalc.Point
	r      float64
	style  gcalc.Style
}

type recordedText struct {
	pos   gcalc.Point
	text  string
	style gcalc.Style
}

// recorder is a renderer that keeps everything drawn to it, for inspection in tests.
type recorder struct {
	w, h  float64
	paths []recordedPath
	ovals []recordedOval
	rects []gcalc.Rect
	texts []recordedText
}

func record(c *gcalc.Canvas) *recorder {
	r := &recorder{w: c.W, h: c.H}
	c.Render(r)
	return r
}

func (r *recorder) Size() (float64, float64) {
	return r.w, r.h
}

func (r *recorder) RenderPath(path *gcalc.Path, style gcalc.Style) {
	r.paths = append(r.paths, recordedPath{path, style})
}

func (r *recorder) RenderOval(center gcalc.Point, rx, ry float64, style gcalc.Style) {
	r.ovals = append(r.ovals, recordedOval{center, rx, style})
}

func (r *recorder) RenderRect(rect gcalc.Rect, style gcalc.Style) {
	r.rects = append(r.rects, rect)
}

func (r *recorder) RenderText(pos gcalc.Point, text string, style gcalc.Style) {
	r.texts = append(r.texts, recordedText{pos, text, style})
}

// curves returns the paths drawn with the curve stroke width, that is, not belonging to the grid.
func (r *recorder) curves(opts *Options) []recordedPath {
	curves := []recordedPath{}
	for _, p := range r.paths {
		if p.style.StrokeWidth == opts.CurveWidth && p.style.Stroke != opts.AxisColor {
			curves = append(curves, p)
		}
	}
	return curves
}

func (r *recorder) hasText(text string) bool {
	for _, t := range r.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

var errEval = errors.New("evaluation failed")

func linear(a, b float64) Evaluator {
	return EvaluatorFunc(func(x float64) ([]Value, error) {
		return []Value{Defined(a*x + b)}, nil
	})
}

func constant(c float64) Evaluator {
	return linear(0.0, c)
}

// failing returns an evaluator of y=x that fails for x > from.
func failing(from float64) Evaluator {
	return EvaluatorFunc(func(x float64) ([]Value, error) {
		if from < x {
			return nil, errEval
		}
		return []Value{Defined(x)}, nil
	})
}

func sqrtEvaluator() Evaluator {
	return EvaluatorFunc(func(x float64) ([]Value, error) {
		if x < 0.0 {
			return nil, nil
		}
		y := math.Sqrt(x)
		return []Value{Defined(y), Defined(-y)}, nil
	})
}

type editor struct {
	invalid int
}

func (ed *editor) SetInvalid() {
	ed.invalid++
}
