package svg

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/gcalc/gcalc"
	"github.com/tdewolff/test"
)

func scene() *gcalc.Canvas {
	c := gcalc.New(100, 50)
	ctx := c.NewContext()
	ctx.SetFillColor(gcalc.White)
	ctx.FillRect(0, 0, 100, 50)

	ctx.SetStrokeColor(gcalc.Charcoal)
	ctx.SetDashes(0.0, 10.0, 5.0)
	ctx.DrawLine(10, 25, 90, 25)

	ctx.SetDashes(0.0)
	ctx.SetStrokeColor(gcalc.Red)
	ctx.SetStrokeWidth(2.0)
	p := &gcalc.Path{}
	p.MoveTo(10, 40)
	p.LineTo(20, 30)
	p.MoveTo(30, 20)
	p.LineTo(40, 10)
	ctx.DrawPath(p)

	ctx.SetFillColor(gcalc.Magenta)
	ctx.FillOval(50, 25, 4, 4)
	ctx.SetFillColor(gcalc.Blue)
	ctx.DrawText(60, 15, "(1.00, 2.00) <&>")
	return c
}

func TestSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, scene().Write(buf, Writer(nil)))

	s := buf.String()
	test.That(t, strings.HasPrefix(s, "<?xml"), s)
	test.That(t, strings.Contains(s, `width="100.00" height="50.00"`), s)
	test.That(t, strings.Contains(s, `viewBox="0 0 100 50"`), s)
	test.That(t, strings.Contains(s, `<rect x="0.00" y="0.00" width="100.00" height="50.00" fill="#ffffff" />`), s)
	test.That(t, strings.Contains(s, `d="M10 25L90 25" fill="none" stroke="#303030" stroke-dasharray="10 5" />`), s)
	test.That(t, strings.Contains(s, `d="M10 40L20 30M30 20L40 10" fill="none" stroke="#ff0000" stroke-width="2" />`), s)
	test.That(t, strings.Contains(s, `<ellipse cx="50.00" cy="25.00" rx="4.00" ry="4.00" fill="#ff00ff" />`), s)
	test.That(t, strings.Contains(s, `fill="#0000ff"`), s)
	test.That(t, strings.Contains(s, `>(1.00, 2.00) &lt;&amp;&gt;</text>`), s)
	test.That(t, strings.HasSuffix(s, "</svg>\n"), s)
}

func TestSVGOptions(t *testing.T) {
	plain := &bytes.Buffer{}
	test.Error(t, scene().Write(plain, Writer(&Options{Title: "y = x"})))
	test.That(t, strings.Contains(plain.String(), "<title>y = x</title>"))

	minified := &bytes.Buffer{}
	test.Error(t, scene().Write(minified, Writer(&Options{Minify: true})))
	test.That(t, strings.Contains(minified.String(), "<svg"))
	test.That(t, minified.Len() < plain.Len(), minified.String())

	compressed := &bytes.Buffer{}
	opts := &Options{Compression: 42}
	test.Error(t, scene().Write(compressed, Writer(opts)))
	test.T(t, opts.Compression, 42, "options of the caller are not modified")
	r, err := gzip.NewReader(compressed)
	test.Error(t, err)
	b, err := io.ReadAll(r)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), `stroke-dasharray="10 5"`))
}

func TestSVGWriteError(t *testing.T) {
	err := scene().Write(test.NewErrorWriter(0), Writer(nil))
	test.T(t, err, test.ErrPlain)

	err = scene().Write(test.NewErrorWriter(0), Writer(&Options{Compression: -1}))
	test.That(t, err != nil)
}

func TestPathData(t *testing.T) {
	p := &gcalc.Path{}
	p.MoveTo(1.5, 1.25)
	p.LineTo(2, 3)
	test.String(t, pathData(p), "M1.5 1.25L2 3")
	test.String(t, pathData(&gcalc.Path{}), "")
	test.String(t, num(2.0).String(), "2")
	test.String(t, dec(12.3456).String(), "12.346")
	test.String(t, dec(173.482).String(), "173.482")
	test.String(t, dec(250.75).String(), "250.75")
}
