package pdf

import (
	"image/color"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gcalc/gcalc"
)

type Options struct {
	Compress bool
	Title    string
	Creator  string
}

var DefaultOptions = Options{
	Compress: true,
	Creator:  "gcalc",
}

// PDF is a portable document format renderer. One canvas pixel maps to one point.
type PDF struct {
	w             io.Writer
	pdf           *fpdf.Fpdf
	width, height float64
	opts          *Options

	// current graphics state, to avoid emitting redundant operators
	drawColor, fillColor, textColor color.RGBA
	lineWidth                       float64
	dashes                          []float64
	dashOffset                      float64
	fontSize                        float64
}

// New returns a portable document format (PDF) renderer with a single page of width by height points.
func New(w io.Writer, width, height float64, opts *Options) *PDF {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(0.0, 0.0, 0.0)
	pdf.SetAutoPageBreak(false, 0.0)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}
	pdf.AddPage()
	pdf.SetLineCapStyle("butt")
	pdf.SetLineJoinStyle("miter")

	r := &PDF{
		w:         w,
		pdf:       pdf,
		width:     width,
		height:    height,
		opts:      opts,
		drawColor: gcalc.Black,
		fillColor: gcalc.Black,
		textColor: gcalc.Black,
		lineWidth: -1.0,
	}
	return r
}

// Close writes the document to the writer. Any error that occurred while building the document is returned.
func (r *PDF) Close() error {
	return r.pdf.Output(r.w)
}

// Size returns the size of the page in points.
func (r *PDF) Size() (float64, float64) {
	return r.width, r.height
}

// RenderPath strokes a path.
func (r *PDF) RenderPath(path *gcalc.Path, style gcalc.Style) {
	if !style.HasStroke() {
		return
	}
	margin := style.StrokeWidth + 1.0
	polys := path.Clip(gcalc.Rect{X: -margin, Y: -margin, W: r.width + 2.0*margin, H: r.height + 2.0*margin}).Polylines()
	if len(polys) == 0 {
		return
	}

	r.setDrawColor(style.Stroke)
	r.setLineWidth(style.StrokeWidth)
	if style.IsDashed() {
		r.setDashes(style.DashOffset, style.Dashes)
	} else {
		r.setDashes(0.0, nil)
	}
	for _, poly := range polys {
		for i, pt := range poly {
			if i == 0 {
				r.pdf.MoveTo(pt.X, pt.Y)
			} else {
				r.pdf.LineTo(pt.X, pt.Y)
			}
		}
	}
	r.pdf.DrawPath("D")
}

// RenderOval renders an ellipse.
func (r *PDF) RenderOval(center gcalc.Point, rx, ry float64, style gcalc.Style) {
	if !center.IsFinite() || rx <= 0.0 || ry <= 0.0 {
		return
	}
	bounds := gcalc.Rect{X: -rx, Y: -ry, W: r.width + 2.0*rx, H: r.height + 2.0*ry}
	if !bounds.Contains(center) {
		return
	}
	if op := r.shapeStyle(style); op != "" {
		r.pdf.Ellipse(center.X, center.Y, rx, ry, 0.0, op)
	}
}

// RenderRect renders a rectangle.
func (r *PDF) RenderRect(rect gcalc.Rect, style gcalc.Style) {
	if rect.W <= 0.0 || rect.H <= 0.0 {
		return
	}
	if op := r.shapeStyle(style); op != "" {
		r.pdf.Rect(rect.X, rect.Y, rect.W, rect.H, op)
	}
}

// RenderText renders text in the Courier core font with its baseline starting at pos.
func (r *PDF) RenderText(pos gcalc.Point, text string, style gcalc.Style) {
	if !pos.IsFinite() || text == "" || style.Fill.A == 0 {
		return
	}
	bounds := gcalc.Rect{X: -r.width, Y: -r.height, W: 3.0 * r.width, H: 3.0 * r.height}
	if !bounds.Contains(pos) {
		return
	}
	size := style.FontSize
	if size <= 0.0 {
		size = gcalc.DefaultStyle.FontSize
	}
	if size != r.fontSize {
		r.pdf.SetFont("Courier", "", size)
		r.fontSize = size
	}
	if style.Fill != r.textColor {
		r.pdf.SetTextColor(int(style.Fill.R), int(style.Fill.G), int(style.Fill.B))
		r.textColor = style.Fill
	}
	r.pdf.Text(pos.X, pos.Y, text)
}

// shapeStyle sets the colors for a closed shape and returns the fpdf style string.
func (r *PDF) shapeStyle(style gcalc.Style) string {
	op := ""
	if style.HasFill() {
		r.setFillColor(style.Fill)
		op += "F"
	}
	if style.HasStroke() {
		r.setDrawColor(style.Stroke)
		r.setLineWidth(style.StrokeWidth)
		r.setDashes(0.0, nil)
		op += "D"
	}
	return op
}

func (r *PDF) setDrawColor(col color.RGBA) {
	if col != r.drawColor {
		r.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
		r.drawColor = col
	}
}

func (r *PDF) setFillColor(col color.RGBA) {
	if col != r.fillColor {
		r.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		r.fillColor = col
	}
}

func (r *PDF) setLineWidth(width float64) {
	if width != r.lineWidth {
		r.pdf.SetLineWidth(width)
		r.lineWidth = width
	}
}

func (r *PDF) setDashes(offset float64, dashes []float64) {
	if offset != r.dashOffset || !float64sEqual(dashes, r.dashes) {
		r.pdf.SetDashPattern(dashes, offset)
		r.dashOffset = offset
		r.dashes = append(r.dashes[:0], dashes...)
	}
}

// Writer returns a canvas writer that writes PDF documents with the given options.
func Writer(opts *Options) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		pdf := New(w, c.W, c.H, opts)
		c.Render(pdf)
		return pdf.Close()
	}
}
