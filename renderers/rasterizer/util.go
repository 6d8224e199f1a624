package rasterizer

import (
	"image"
	"math"

	"github.com/gcalc/gcalc"
)

// coordinates beyond this range overflow 26.6 fixed point arithmetic
const maxCoord = 1 << 20

// expandedBounds returns the image bounds grown by a margin on every side.
func expandedBounds(b image.Rectangle, margin float64) gcalc.Rect {
	margin = math.Max(margin, 1.0)
	return gcalc.Rect{
		X: float64(b.Min.X) - margin,
		Y: float64(b.Min.Y) - margin,
		W: float64(b.Dx()) + 2.0*margin,
		H: float64(b.Dy()) + 2.0*margin,
	}
}
