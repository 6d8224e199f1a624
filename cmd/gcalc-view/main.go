package main

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/gcalc/gcalc/equation"
	"github.com/gcalc/gcalc/graph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// clickRadius is the cursor movement in pixels below which a press and release count as a click rather than a drag.
const clickRadius = 3

type View struct {
	Width     int    `short:"W" default:"800" desc:"Window width"`
	Height    int    `short:"H" default:"600" desc:"Window height"`
	Output    string `short:"o" default:"graph.svg" desc:"Export filename, written when pressing S"`
	Verbose   bool   `short:"v" desc:"Verbose logging"`
	Equations string `index:"0" desc:"Equations separated by semicolons, as in \"y = sin(x); y = x/2\""`
}

func main() {
	root := argp.NewCmd(&View{}, "Interactive equation plotter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *View) Run() error {
	var logger *zap.Logger
	var err error
	if cmd.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := graph.DefaultOptions
	opts.Logger = slog.New(zapslog.NewHandler(logger.Core()))
	g, err := graph.New(cmd.Width, cmd.Height, &opts)
	if err != nil {
		return err
	}
	id := 0
	for _, s := range strings.Split(cmd.Equations, ";") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		eq, err := equation.Parse(s)
		if err != nil {
			return fmt.Errorf("equation %d %q: %w", id, s, err)
		}
		if err := g.EquationAdded(id, eq, nil); err != nil {
			return err
		}
		id++
	}

	ebiten.SetWindowTitle("gcalc")
	ebiten.SetWindowSize(cmd.Width, cmd.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&viewer{
		graph:  g,
		log:    logger,
		output: cmd.Output,
	})
}

type viewer struct {
	graph  *graph.Graph
	log    *zap.Logger
	output string

	screen  *ebiten.Image
	shown   *image.RGBA
	press   image.Point
	cursor  image.Point
	pressed bool
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	w, h := v.graph.Size()
	inside := cursor.In(image.Rect(0, 0, w, h))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside {
		v.pressed = true
		v.press = cursor
		v.graph.BeginDrag(float64(x), float64(y))
	} else if v.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if cursor != v.cursor {
			v.graph.DragTo(float64(x), float64(y))
		}
	} else if v.pressed {
		v.pressed = false
		v.graph.EndDrag()
		if d := cursor.Sub(v.press); -clickRadius <= d.X && d.X <= clickRadius && -clickRadius <= d.Y && d.Y <= clickRadius {
			v.graph.Click(float64(v.press.X), float64(v.press.Y))
		}
	}

	if !v.pressed && cursor != v.cursor {
		if inside {
			v.graph.Hover(float64(x), float64(y))
		} else if _, ok := v.graph.Hovered(); ok {
			v.graph.ClearHover()
		}
	}
	v.cursor = cursor

	if _, dy := ebiten.Wheel(); 0.0 < dy {
		v.graph.ZoomIn()
	} else if dy < 0.0 {
		v.graph.ZoomOut()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		v.graph.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		v.graph.ZoomOut()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		v.graph.SetScale(1.0)
		v.graph.SetOffset(0.0, 0.0)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.graph.ClearClicks()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := v.graph.ExportFile(v.output); err != nil {
			v.log.Error("export failed", zap.Error(err))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	img := v.graph.Image()
	if v.screen == nil || v.screen.Bounds() != img.Bounds() {
		if v.screen != nil {
			v.screen.Deallocate()
		}
		v.screen = ebiten.NewImageFromImage(img)
	} else if v.shown != img {
		v.screen.WritePixels(img.Pix)
	}
	v.shown = img
	screen.DrawImage(v.screen, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := v.graph.Size(); 0 < outsideWidth && 0 < outsideHeight && (w != outsideWidth || h != outsideHeight) {
		if err := v.graph.Resize(outsideWidth, outsideHeight); err != nil {
			v.log.Warn("resize failed", zap.Error(err))
		}
	}
	return v.graph.Size()
}
