package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gcalc/gcalc"
	"github.com/gcalc/gcalc/equation"
	"github.com/gcalc/gcalc/graph"
	"github.com/gcalc/gcalc/renderers"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

type Plot struct {
	Output     string  `short:"o" default:"graph.png" desc:"Output filename, the extension selects the format (png, jpg, gif, tiff, svg, svgz, pdf)"`
	Width      int     `short:"W" default:"800" desc:"Width in pixels"`
	Height     int     `short:"H" default:"600" desc:"Height in pixels"`
	Scale      float64 `short:"s" default:"1" desc:"Zoom scale"`
	X          float64 `short:"x" desc:"Horizontal offset of the view in graph units"`
	Y          float64 `short:"y" desc:"Vertical offset of the view in graph units"`
	Resolution float64 `short:"r" default:"1" desc:"Dots per pixel for raster output"`
	Click      string  `short:"c" desc:"Mark graph points, as in \"1,2;-3,0.5\""`
	Background string  `short:"b" desc:"Background color, as in \"#fff\""`
	Palette    string  `short:"p" desc:"Curve colors separated by semicolons, as in \"#e74c3c;#1abc9c\""`
	Verbose    bool    `short:"v" desc:"Verbose logging"`
	Equations  string  `index:"0" desc:"Equations separated by semicolons, as in \"y = x^2; y = 2\""`
}

func main() {
	root := argp.NewCmd(&Plot{}, "Plot equations and their intersections")
	root.Parse()
	root.PrintHelp()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (cmd *Plot) Run() error {
	if strings.TrimSpace(cmd.Equations) == "" {
		return argp.ShowUsage
	} else if ext := strings.ToLower(filepath.Ext(cmd.Output)); !slices.Contains(renderers.Extensions, ext) {
		return fmt.Errorf("unsupported output format %q, use one of %v", ext, strings.Join(renderers.Extensions, " "))
	}

	logger, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := graph.DefaultOptions
	opts.Logger = slog.New(zapslog.NewHandler(logger.Core()))
	if cmd.Background != "" {
		opts.Background = gcalc.Hex(cmd.Background)
	}
	if cmd.Palette != "" {
		opts.Palette = gcalc.Palette{}
		for _, s := range splitList(cmd.Palette) {
			opts.Palette = append(opts.Palette, gcalc.Hex(s))
		}
	}
	g, err := graph.New(cmd.Width, cmd.Height, &opts)
	if err != nil {
		return err
	}
	g.SetScale(cmd.Scale)
	g.SetOffset(cmd.X, cmd.Y)

	for id, s := range splitList(cmd.Equations) {
		eq, err := equation.Parse(s)
		if err != nil {
			return fmt.Errorf("equation %d %q: %w", id, s, err)
		}
		if err := g.EquationAdded(id, eq, nil); err != nil {
			return err
		}
	}

	clicks, err := parseClicks(cmd.Click)
	if err != nil {
		return err
	}
	vp := g.Viewport()
	for _, p := range clicks {
		px := vp.ToPixel(p.X, p.Y)
		g.Click(px.X, px.Y)
	}

	if err := g.Redraw(); err != nil {
		fmt.Fprintln(os.Stderr, "WARNING:", err)
	}
	for _, p := range g.Intersections() {
		fmt.Printf("%d x %d: (%.2f, %.2f)\n", p.A, p.B, p.X, p.Y)
	}
	return g.ExportFile(cmd.Output, gcalc.Resolution(cmd.Resolution))
}

func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseClicks parses semicolon separated "x,y" graph coordinates.
func parseClicks(s string) ([]gcalc.Point, error) {
	points := []gcalc.Point{}
	for _, item := range splitList(s) {
		p := gcalc.Point{}
		if _, err := fmt.Sscanf(item, "%g,%g", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("bad click %q: %w", item, err)
		} else if !p.IsFinite() {
			return nil, fmt.Errorf("bad click %q", item)
		}
		points = append(points, p)
	}
	return points, nil
}
