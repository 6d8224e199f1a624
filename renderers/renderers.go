package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"path/filepath"
	"strings"

	"github.com/gcalc/gcalc"
	"github.com/gcalc/gcalc/renderers/pdf"
	"github.com/gcalc/gcalc/renderers/rasterizer"
	"github.com/gcalc/gcalc/renderers/svg"
	"golang.org/x/image/tiff"
)

type Options struct {
	gcalc.Resolution
	JPG  *jpeg.Options
	GIF  *gif.Options
	TIFF *tiff.Options
	SVG  *svg.Options
	PDF  *pdf.Options
}

// Extensions lists the file extensions supported by Write.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".svg", ".svgz", ".pdf"}

// Write writes the canvas to filename, choosing the format by the file extension. Options are passed by type: gcalc.Resolution, *jpeg.Options, *gif.Options, *tiff.Options, *svg.Options, or *pdf.Options.
func Write(filename string, c *gcalc.Canvas, opts ...interface{}) error {
	writer, err := Writer(filepath.Ext(filename), opts...)
	if err != nil {
		return err
	}
	return c.WriteFile(filename, writer)
}

// Writer returns the canvas writer for the file extension ext, such as ".png".
func Writer(ext string, opts ...interface{}) (gcalc.Writer, error) {
	options := Options{
		Resolution: 1.0,
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case gcalc.Resolution:
			options.Resolution = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *pdf.Options:
			options.PDF = o
		default:
			return nil, fmt.Errorf("unknown option: %v", opt)
		}
	}

	switch ext = strings.ToLower(ext); ext {
	case ".png":
		return rasterizer.PNGWriter(options.Resolution), nil
	case ".jpg", ".jpeg":
		return rasterizer.JPGWriter(options.Resolution, options.JPG), nil
	case ".gif":
		return rasterizer.GIFWriter(options.Resolution, options.GIF), nil
	case ".tif", ".tiff":
		return rasterizer.TIFFWriter(options.Resolution, options.TIFF), nil
	case ".svg", ".svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if ext == ".svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		return svg.Writer(&svgOpts), nil
	case ".pdf":
		return pdf.Writer(options.PDF), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %v", ext)
	}
}
