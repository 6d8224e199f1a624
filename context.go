package gcalc

import "image/color"

// Context maintains the state for the current drawing style and dispatches drawing calls to a Renderer.
type Context struct {
	Renderer

	Style
	styleStack []Style
}

// NewContext returns a new context which is a wrapper around a renderer.
func NewContext(r Renderer) *Context {
	return &Context{r, DefaultStyle, nil}
}

// Width returns the width of the canvas in pixels.
func (c *Context) Width() float64 {
	w, _ := c.Renderer.Size()
	return w
}

// Height returns the height of the canvas in pixels.
func (c *Context) Height() float64 {
	_, h := c.Renderer.Size()
	return h
}

// Push saves the current draw state so that it can be popped later on.
func (c *Context) Push() {
	style := c.Style
	style.Dashes = append([]float64{}, c.Style.Dashes...)
	c.styleStack = append(c.styleStack, style)
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no states on the stack, this will do nothing.
func (c *Context) Pop() {
	if len(c.styleStack) == 0 {
		return
	}
	c.Style = c.styleStack[len(c.styleStack)-1]
	c.styleStack = c.styleStack[:len(c.styleStack)-1]
}

// SetFillColor sets the color to be used for filling operations.
func (c *Context) SetFillColor(col color.Color) {
	c.Style.Fill = rgba(col)
}

// SetStrokeColor sets the color to be used for stroking operations.
func (c *Context) SetStrokeColor(col color.Color) {
	c.Style.Stroke = rgba(col)
}

// SetStrokeWidth sets the width in pixels for stroking operations.
func (c *Context) SetStrokeWidth(width float64) {
	c.Style.StrokeWidth = width
}

// SetDashes sets the dash pattern to be used for stroking operations. The dash offset denotes the offset into the dash array in pixels from where to start. Negative values are allowed.
func (c *Context) SetDashes(offset float64, dashes ...float64) {
	c.Style.DashOffset = offset
	c.Style.Dashes = dashes
}

// SetFontSize sets the text size in pixels.
func (c *Context) SetFontSize(size float64) {
	c.Style.FontSize = size
}

// DrawLine strokes a line from (x1,y1) to (x2,y2) using the stroke style.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.DrawPath(Line(x1, y1, x2, y2))
}

// DrawPath strokes the path using the stroke style. Paths are never filled.
func (c *Context) DrawPath(p *Path) {
	if p.Empty() || !c.Style.HasStroke() {
		return
	}
	style := c.Style
	style.Fill = Transparent
	c.RenderPath(p, style)
}

// FillOval fills an ellipse centered at (x,y) with radii rx and ry using the fill color.
func (c *Context) FillOval(x, y, rx, ry float64) {
	if !c.Style.HasFill() || rx <= 0.0 || ry <= 0.0 {
		return
	}
	style := c.Style
	style.Stroke = Transparent
	c.RenderOval(Point{x, y}, rx, ry, style)
}

// FillRect fills the rectangle with origin (x,y) and size (w,h) using the fill color.
func (c *Context) FillRect(x, y, w, h float64) {
	if !c.Style.HasFill() || w <= 0.0 || h <= 0.0 {
		return
	}
	style := c.Style
	style.Stroke = Transparent
	c.RenderRect(Rect{x, y, w, h}, style)
}

// DrawText draws text with its baseline starting at (x,y) using the fill color.
func (c *Context) DrawText(x, y float64, text string) {
	if text == "" || c.Style.Fill.A == 0 {
		return
	}
	c.RenderText(Point{x, y}, text, c.Style)
}

func rgba(col color.Color) color.RGBA {
	if col == nil {
		return Transparent
	}
	return color.RGBAModel.Convert(col).(color.RGBA)
}
