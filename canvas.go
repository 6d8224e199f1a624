package gcalc

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Resolution is the number of output dots per canvas pixel.
type Resolution float64

// DPP returns the resolution in dots per pixel. Non-positive resolutions are treated as one.
func (res Resolution) DPP() float64 {
	if res <= 0.0 {
		return 1.0
	}
	return float64(res)
}

// Writer can write a canvas to a writer.
type Writer func(w io.Writer, c *Canvas) error

type layerType int

const (
	pathLayer layerType = iota
	ovalLayer
	rectLayer
	textLayer
)

type layer struct {
	t      layerType
	path   *Path
	pos    Point
	rx, ry float64
	rect   Rect
	text   string
	style  Style
}

// Canvas stores all drawing operations as layers that can be re-rendered to other renderers.
type Canvas struct {
	layers []layer
	W, H   float64
}

// New returns a new canvas with width and height in pixels.
func New(width, height float64) *Canvas {
	return &Canvas{
		W: width,
		H: height,
	}
}

// NewContext returns a new context on the canvas.
func (c *Canvas) NewContext() *Context {
	return NewContext(c)
}

// Size returns the size of the canvas in pixels.
func (c *Canvas) Size() (float64, float64) {
	return c.W, c.H
}

// RenderPath records a path layer.
func (c *Canvas) RenderPath(path *Path, style Style) {
	style.Dashes = append([]float64{}, style.Dashes...)
	c.layers = append(c.layers, layer{t: pathLayer, path: path.Copy(), style: style})
}

// RenderOval records an oval layer.
func (c *Canvas) RenderOval(center Point, rx, ry float64, style Style) {
	c.layers = append(c.layers, layer{t: ovalLayer, pos: center, rx: rx, ry: ry, style: style})
}

// RenderRect records a rectangle layer.
func (c *Canvas) RenderRect(rect Rect, style Style) {
	c.layers = append(c.layers, layer{t: rectLayer, rect: rect, style: style})
}

// RenderText records a text layer.
func (c *Canvas) RenderText(pos Point, text string, style Style) {
	c.layers = append(c.layers, layer{t: textLayer, pos: pos, text: text, style: style})
}

// Empty returns true if the canvas has no layers.
func (c *Canvas) Empty() bool {
	return len(c.layers) == 0
}

// Len returns the number of recorded layers.
func (c *Canvas) Len() int {
	return len(c.layers)
}

// Render renders the accumulated canvas drawing operations to another renderer, in the order they were recorded.
func (c *Canvas) Render(r Renderer) {
	for _, l := range c.layers {
		switch l.t {
		case pathLayer:
			r.RenderPath(l.path, l.style)
		case ovalLayer:
			r.RenderOval(l.pos, l.rx, l.ry, l.style)
		case rectLayer:
			r.RenderRect(l.rect, l.style)
		case textLayer:
			r.RenderText(l.pos, l.text, l.style)
		}
	}
}

// Write writes the canvas to an io.Writer using the given Writer.
func (c *Canvas) Write(w io.Writer, writer Writer) error {
	return writer(w, c)
}

// WriteFile writes the canvas to a file named by filename using the given Writer.
func (c *Canvas) WriteFile(filename string, writer Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err = writer(w, c); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %v: %w", filename, err)
	}
	return nil
}
