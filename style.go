package gcalc

import "image/color"

// Style is the fill and stroke style used for drawing.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	DashOffset  float64
	Dashes      []float64
	FontSize    float64
}

// DefaultStyle is the default style: a black one pixel wide stroke without fill.
var DefaultStyle = Style{
	Fill:        Transparent,
	Stroke:      Black,
	StrokeWidth: 1.0,
	DashOffset:  0.0,
	Dashes:      []float64{},
	FontSize:    13.0,
}

// HasFill returns true if the style has a visible fill.
func (style Style) HasFill() bool {
	return style.Fill.A != 0
}

// HasStroke returns true if the style has a visible stroke.
func (style Style) HasStroke() bool {
	return style.Stroke.A != 0 && 0.0 < style.StrokeWidth
}

// IsDashed returns true if the stroke has a dash pattern with at least one positive length.
func (style Style) IsDashed() bool {
	for _, d := range style.Dashes {
		if 0.0 < d {
			return true
		}
	}
	return false
}
