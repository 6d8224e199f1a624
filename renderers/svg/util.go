package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gcalc/gcalc"
	"github.com/tdewolff/minify/v2"
)

// precision is the number of significant digits for numbers, decimals is the number of decimals for path coordinates.
const (
	precision = 8
	decimals  = 3
)

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", decimals, f)
	s = string(minify.Decimal([]byte(s), precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// pathData formats the polylines of a path as SVG path data, skipping non-finite points.
func pathData(p *gcalc.Path) string {
	sb := strings.Builder{}
	for _, poly := range p.Polylines() {
		move := true
		for _, pt := range poly {
			if !pt.IsFinite() {
				move = true
				continue
			}
			if move {
				sb.WriteByte('M')
				move = false
			} else {
				sb.WriteByte('L')
			}
			fmt.Fprintf(&sb, "%v %v", dec(pt.X), dec(pt.Y))
		}
	}
	return sb.String()
}

// errWriter remembers the first write error, since the document writer ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}
