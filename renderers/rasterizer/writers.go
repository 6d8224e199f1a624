package rasterizer

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gcalc/gcalc"
	"golang.org/x/image/tiff"
)

// PNGWriter writes the canvas as a PNG file.
func PNGWriter(resolution gcalc.Resolution) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		img := Draw(c, resolution)
		return png.Encode(w, img)
	}
}

// JPGWriter writes the canvas as a JPG file.
func JPGWriter(resolution gcalc.Resolution, opts *jpeg.Options) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		img := Draw(c, resolution)
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the canvas as a GIF file.
func GIFWriter(resolution gcalc.Resolution, opts *gif.Options) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		img := Draw(c, resolution)
		return gif.Encode(w, img, opts)
	}
}

// TIFFWriter writes the canvas as a TIFF file.
func TIFFWriter(resolution gcalc.Resolution, opts *tiff.Options) gcalc.Writer {
	return func(w io.Writer, c *gcalc.Canvas) error {
		img := Draw(c, resolution)
		return tiff.Encode(w, img, opts)
	}
}
