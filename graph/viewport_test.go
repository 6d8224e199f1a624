package graph

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestViewportRoundTrip(t *testing.T) {
	vps := []Viewport{
		NewViewport(400, 200, 50.0),
		{OffsetX: 3.25, OffsetY: -7.5, Scale: 2.25, Width: 640, Height: 480, BaseInterval: 50.0},
		{OffsetX: -1e3, OffsetY: 1e3, Scale: 1e-4, Width: 801, Height: 599, BaseInterval: 50.0},
		{OffsetX: 0.1, OffsetY: 0.2, Scale: 1e4, Width: 17, Height: 3, BaseInterval: 50.0},
	}
	for _, vp := range vps {
		for _, gx := range []float64{-12.5, -1.0, 0.0, 0.3, 42.0} {
			for _, gy := range []float64{-3.0, 0.0, 0.7, 100.0} {
				p := vp.ToPixel(gx, gy)
				q := vp.ToGraph(p.X, p.Y)
				test.FloatDiff(t, q.X, gx, 1e-9)
				test.FloatDiff(t, q.Y, gy, 1e-9)
			}
		}
	}
}

func TestViewportMapping(t *testing.T) {
	vp := NewViewport(400, 200, 50.0)
	test.T(t, vp.Unit(), 50.0)
	test.T(t, vp.ToPixel(0.0, 0.0).X, 200.0)
	test.T(t, vp.ToPixel(0.0, 0.0).Y, 100.0)
	test.T(t, vp.ToPixel(1.0, 1.0).X, 250.0)
	test.T(t, vp.ToPixel(1.0, 1.0).Y, 50.0) // graph y points up
	test.T(t, vp.ToGraph(0.0, 0.0).X, -4.0)
	test.T(t, vp.ToGraph(0.0, 0.0).Y, 2.0)

	bounds := vp.Bounds()
	test.T(t, bounds.X, -4.0)
	test.T(t, bounds.Y, -2.0)
	test.T(t, bounds.W, 8.0)
	test.T(t, bounds.H, 4.0)
}

func TestViewportPan(t *testing.T) {
	vp := Viewport{OffsetX: 0.5, OffsetY: -1.0, Scale: 1.5, Width: 400, Height: 300, BaseInterval: 50.0}
	gx, gy := 2.0, 3.0
	before := vp.ToPixel(gx, gy)

	vp.Pan(37.0, 0.0)
	after := vp.ToPixel(gx, gy)
	test.FloatDiff(t, after.X, before.X+37.0, 1e-9)
	test.FloatDiff(t, after.Y, before.Y, 1e-9)

	vp.Pan(0.0, -12.0)
	after = vp.ToPixel(gx, gy)
	test.FloatDiff(t, after.X, before.X+37.0, 1e-9)
	test.FloatDiff(t, after.Y, before.Y-12.0, 1e-9)
}

func TestViewportZoom(t *testing.T) {
	vp := NewViewport(400, 200, 50.0)
	vp.Scale = 0.8
	vp.Zoom(1.5, 1e-4, 1e4)
	test.Float(t, vp.Scale, 1.2)
	vp.Zoom(1.0/1.5, 1e-4, 1e4)
	test.FloatDiff(t, vp.Scale, 0.8, 1e-12)

	vp.SetScale(0.0, 1e-4, 1e4)
	test.T(t, vp.Scale, 1e-4)
	vp.SetScale(-3.0, 1e-4, 1e4)
	test.T(t, vp.Scale, 1e-4)
	vp.SetScale(math.Inf(1), 1e-4, 1e4)
	test.T(t, vp.Scale, 1e4)
	vp.SetScale(math.NaN(), 1e-4, 1e4)
	test.T(t, vp.Scale, 1e4)
}
