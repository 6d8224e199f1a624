package rasterizer

import (
	"image"
	"math"

	"github.com/gcalc/gcalc"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Draw draws the canvas on a new image with given resolution (in dots-per-pixel). Higher resolution will result in larger images.
func Draw(c *gcalc.Canvas, resolution gcalc.Resolution) *image.RGBA {
	dpp := resolution.DPP()
	img := image.NewRGBA(image.Rect(0, 0, int(c.W*dpp+0.5), int(c.H*dpp+0.5)))
	ras := New(img, resolution)
	c.Render(ras)
	return ras.Image()
}

// Rasterizer is a rasterizing renderer.
type Rasterizer struct {
	img        *image.RGBA
	resolution gcalc.Resolution

	scanner *scanx.Scanner
	dasher  *rasterx.Dasher
	face    font.Face
}

// New returns a renderer that draws to a rasterized image.
func New(img *image.RGBA, resolution gcalc.Resolution) *Rasterizer {
	size := img.Bounds().Size()
	spanner := scanx.NewImgSpanner(img)
	scanner := scanx.NewScanner(spanner, size.X, size.Y)
	scanner.SetClip(img.Bounds())
	return &Rasterizer{
		img:        img,
		resolution: resolution,
		scanner:    scanner,
		dasher:     rasterx.NewDasher(size.X, size.Y, scanner),
		face:       basicfont.Face7x13,
	}
}

// Image returns the destination image.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Size returns the size of the canvas in pixels.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	dpp := r.resolution.DPP()
	return float64(size.X) / dpp, float64(size.Y) / dpp
}

// RenderPath strokes a path. Polylines are drawn separately, so gaps between them stay empty.
func (r *Rasterizer) RenderPath(path *gcalc.Path, style gcalc.Style) {
	if !style.HasStroke() {
		return
	}
	dpp := r.resolution.DPP()

	var dashes []float64
	if style.IsDashed() {
		dashes = make([]float64, len(style.Dashes))
		for i, d := range style.Dashes {
			dashes[i] = d * dpp
		}
	}
	r.dasher.SetStroke(toFixed(style.StrokeWidth*dpp), toFixed(4.0), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip, dashes, style.DashOffset*dpp)

	bounds := expandedBounds(r.img.Bounds(), style.StrokeWidth*dpp)
	bounds = gcalc.Rect{X: bounds.X / dpp, Y: bounds.Y / dpp, W: bounds.W / dpp, H: bounds.H / dpp}
	for _, poly := range path.Clip(bounds).Polylines() {
		for i, pt := range poly {
			if i == 0 {
				r.dasher.Start(rasterx.ToFixedP(pt.X*dpp, pt.Y*dpp))
			} else {
				r.dasher.Line(rasterx.ToFixedP(pt.X*dpp, pt.Y*dpp))
			}
		}
		r.dasher.Stop(false)
	}
	r.dasher.SetColor(style.Stroke)
	r.dasher.Draw()
	r.dasher.Clear()
}

// RenderOval fills an ellipse.
func (r *Rasterizer) RenderOval(center gcalc.Point, rx, ry float64, style gcalc.Style) {
	if !center.IsFinite() || rx <= 0.0 || ry <= 0.0 {
		return
	}
	dpp := r.resolution.DPP()
	center = center.Mul(dpp)
	if !expandedBounds(r.img.Bounds(), math.Max(rx, ry)*dpp+style.StrokeWidth*dpp).Contains(center) {
		return // outside image
	}
	if style.HasFill() {
		filler := &r.dasher.Filler
		rasterx.AddEllipse(center.X, center.Y, rx*dpp, ry*dpp, 0.0, filler)
		filler.SetColor(style.Fill)
		filler.Draw()
		filler.Clear()
	}
	if style.HasStroke() {
		r.dasher.SetStroke(toFixed(style.StrokeWidth*dpp), toFixed(4.0), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip, nil, 0.0)
		rasterx.AddEllipse(center.X, center.Y, rx*dpp, ry*dpp, 0.0, r.dasher)
		r.dasher.SetColor(style.Stroke)
		r.dasher.Draw()
		r.dasher.Clear()
	}
}

// RenderRect fills a rectangle.
func (r *Rasterizer) RenderRect(rect gcalc.Rect, style gcalc.Style) {
	if !style.HasFill() || rect.W <= 0.0 || rect.H <= 0.0 {
		return
	}
	dpp := r.resolution.DPP()
	bounds := expandedBounds(r.img.Bounds(), 1.0)
	x0 := math.Max(rect.X*dpp, bounds.X)
	y0 := math.Max(rect.Y*dpp, bounds.Y)
	x1 := math.Min((rect.X+rect.W)*dpp, bounds.X+bounds.W)
	y1 := math.Min((rect.Y+rect.H)*dpp, bounds.Y+bounds.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	filler := &r.dasher.Filler
	rasterx.AddRect(x0, y0, x1, y1, 0.0, filler)
	filler.SetColor(style.Fill)
	filler.Draw()
	filler.Clear()
}

// RenderText draws text with a fixed 7x13 bitmap face, its baseline starting at pos. The font size of the style is ignored.
func (r *Rasterizer) RenderText(pos gcalc.Point, text string, style gcalc.Style) {
	if !pos.IsFinite() || text == "" || style.Fill.A == 0 {
		return
	}
	pos = pos.Mul(r.resolution.DPP())
	if math.Abs(pos.X) > maxCoord || math.Abs(pos.Y) > maxCoord {
		return
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(style.Fill),
		Face: r.face,
		Dot:  fixed.P(int(math.Round(pos.X)), int(math.Round(pos.Y))),
	}
	d.DrawString(text)
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}
