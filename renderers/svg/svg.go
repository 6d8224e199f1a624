package svg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/gcalc/gcalc"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

type Options struct {
	Compression int  // gzip level, 0 disables compression
	Minify      bool // minify the document before writing
	Decimals    int  // decimals for element coordinates, zero keeps two
	Title       string
}

var DefaultOptions = Options{
	Compression: 0,
	Minify:      false,
	Decimals:    2,
}

// SVG is a scalable vector graphics renderer.
type SVG struct {
	w             *errWriter
	out           io.Writer
	gzip          *gzip.Writer
	buf           *bytes.Buffer
	doc           *svgo.SVG
	width, height float64
	opts          *Options
}

// New returns a scalable vector graphics (SVG) renderer. The document measures width by height pixels.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		opts = &DefaultOptions
	}
	options := *opts
	opts = &options

	r := &SVG{
		out:    w,
		width:  width,
		height: height,
		opts:   opts,
	}
	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		r.gzip, _ = gzip.NewWriterLevel(w, opts.Compression)
		r.out = r.gzip
	}
	if opts.Minify {
		r.buf = &bytes.Buffer{}
		r.w = &errWriter{w: r.buf}
	} else {
		r.w = &errWriter{w: r.out}
	}

	r.doc = svgo.New(r.w)
	if 0 < opts.Decimals {
		r.doc.Decimals = opts.Decimals
	}
	r.doc.Start(width, height, fmt.Sprintf(`viewBox="0 0 %v %v"`, dec(width), dec(height)))
	if opts.Title != "" {
		r.doc.Title(opts.Title)
	}
	return r
}

// Size returns the size of the document in pixels.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// Close finishes the SVG and returns the first error that occurred while writing. It does not close the underlying writer.
func (r *SVG) Close() error {
	r.doc.End()
	err := r.w.err
	if err == nil && r.opts.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		if err = m.Minify("image/svg+xml", r.out, r.buf); err != nil {
			err = fmt.Errorf("minify svg: %w", err)
		}
	}
	if r.gzip != nil {
		if gzipErr := r.gzip.Close(); err == nil {
			err = gzipErr
		}
	}
	return err
}

// RenderPath renders a path as a stroked <path> element.
func (r *SVG) RenderPath(path *gcalc.Path, style gcalc.Style) {
	d := pathData(path)
	if d == "" || !style.HasStroke() {
		return
	}
	attrs := []string{
		`fill="none"`,
		fmt.Sprintf(`stroke="%v"`, gcalc.ToCSSColor(style.Stroke)),
	}
	if style.StrokeWidth != 1.0 {
		attrs = append(attrs, fmt.Sprintf(`stroke-width="%v"`, num(style.StrokeWidth)))
	}
	if style.IsDashed() {
		dashes := make([]string, len(style.Dashes))
		for i, dash := range style.Dashes {
			dashes[i] = num(dash).String()
		}
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%v"`, strings.Join(dashes, " ")))
		if style.DashOffset != 0.0 {
			attrs = append(attrs, fmt.Sprintf(`stroke-dashoffset="%v"`, num(style.DashOffset)))
		}
	}
	r.doc.Path(d, attrs...)
}

// RenderOval renders an <ellipse> element.
func (r *SVG) RenderOval(center gcalc.Point, rx, ry float64, style gcalc.Style) {
	if !center.IsFinite() || rx <= 0.0 || ry <= 0.0 {
		return
	}
	r.doc.Ellipse(center.X, center.Y, rx, ry, shapeAttrs(style)...)
}

// RenderRect renders a <rect> element.
func (r *SVG) RenderRect(rect gcalc.Rect, style gcalc.Style) {
	if rect.W <= 0.0 || rect.H <= 0.0 {
		return
	}
	r.doc.Rect(rect.X, rect.Y, rect.W, rect.H, shapeAttrs(style)...)
}

// RenderText renders a <text> element with its baseline starting at pos.
func (r *SVG) RenderText(pos gcalc.Point, text string, style gcalc.Style) {
	if !pos.IsFinite() || text == "" {
		return
	}
	attrs := []string{
		fmt.Sprintf(`fill="%v"`, gcalc.ToCSSColor(style.Fill)),
		`font-family="monospace"`,
	}
	if 0.0 < style.FontSize {
		attrs = append(attrs, fmt.Sprintf(`font-size="%v"`, num(style.FontSize)))
	}
	r.doc.Text(pos.X, pos.Y, text, attrs...)
}

func shapeAttrs(style gcalc.Style) []string {
	attrs := []string{}
	if style.HasFill() {
		attrs = append(attrs, fmt.Sprintf(`fill="%v"`, gcalc.ToCSSColor(style.Fill)))
	} else {
		attrs = append(attrs, `fill="none"`)
	}
	if style.HasStroke() {
		attrs = append(attrs, fmt.Sprintf(`stroke="%v"`, gcalc.ToCSSColor(style.Stroke)))
		attrs = append(attrs, fmt.Sprintf(`stroke-width="%v"`, num(style.StrokeWidth)))
	}
	return attrs
}

// Writer returns a canvas writer that writes SVG documents with the given options.
func Writer(opts *Options) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		svg := New(w, c.W, c.H, opts)
		c.Render(svg)
		return svg.Close()
	}
}
