package graph

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/gcalc/gcalc"
)

// Options configures a Graph. The zero value is not usable, start from DefaultOptions.
type Options struct {
	BaseInterval float64 // pixels per graph unit at scale 1
	ZoomFactor   float64
	MinScale     float64
	MaxScale     float64

	IntersectionStride int     // pixel columns between intersection samples
	ToleranceFloor     float64 // minimal vertical distance in graph units that counts as crossing
	SeparationRadius   float64 // intersections closer than this in graph units are merged
	RoundDecimals      int

	Palette           gcalc.Palette
	Background        color.RGBA
	AxisColor         color.RGBA
	ClickColor        color.RGBA
	IntersectionColor color.RGBA
	HoverColor        color.RGBA

	CurveWidth       float64
	AxisWidth        float64
	GridWidth        float64
	GridDashes       []float64 // dash pattern at scale 1, scaled with zoom
	GridMinSpacing   float64   // minimal pixel distance between grid lines
	LabelOffset      gcalc.Point
	HoverOffset      gcalc.Point
	ClickSize        float64
	IntersectionSize float64
	FontSize         float64

	Resolution gcalc.Resolution // dots per pixel of Image
	Logger     *slog.Logger
}

// DefaultOptions are the options used when New is passed nil.
var DefaultOptions = Options{
	BaseInterval: 50.0,
	ZoomFactor:   1.5,
	MinScale:     1e-4,
	MaxScale:     1e4,

	IntersectionStride: 2,
	ToleranceFloor:     0.01,
	SeparationRadius:   0.3,
	RoundDecimals:      2,

	Palette:           gcalc.DefaultPalette,
	Background:        gcalc.White,
	AxisColor:         gcalc.Charcoal,
	ClickColor:        gcalc.Magenta,
	IntersectionColor: gcalc.Red,
	HoverColor:        gcalc.Blue,

	CurveWidth:       2.0,
	AxisWidth:        2.0,
	GridWidth:        1.0,
	GridDashes:       []float64{10.0, 5.0},
	GridMinSpacing:   5.0,
	LabelOffset:      gcalc.Point{X: 2.0, Y: 14.0},
	HoverOffset:      gcalc.Point{X: 10.0, Y: -10.0},
	ClickSize:        8.0,
	IntersectionSize: 10.0,
	FontSize:         13.0,

	Resolution: 1.0,
}

// Tolerance returns the vertical distance in graph units under which two curves are considered to cross at the given scale.
func (o *Options) Tolerance(scale float64) float64 {
	if scale <= 0.0 {
		return o.ToleranceFloor
	}
	tolerance := o.ToleranceFloor / scale
	if tolerance < o.ToleranceFloor {
		return o.ToleranceFloor
	}
	return tolerance
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return nopLogger
	}
	return o.Logger
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})
