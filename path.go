package gcalc

import (
	"math"
	"strconv"
	"strings"
)

// PathCmd is a polyline command.
type PathCmd int

// Path commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
)

// Path is a sequence of polylines. Every MoveTo starts a new polyline, which is how discontinuities are expressed.
type Path struct {
	cmds []PathCmd
	d    []float64
}

// Line returns a path with a single line segment.
func Line(x1, y1, x2, y2 float64) *Path {
	p := &Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Empty returns true if the path has no line segments.
func (p *Path) Empty() bool {
	for _, cmd := range p.cmds {
		if cmd == LineToCmd {
			return false
		}
	}
	return true
}

// Len returns the number of line segments.
func (p *Path) Len() int {
	n := 0
	for _, cmd := range p.cmds {
		if cmd == LineToCmd {
			n++
		}
	}
	return n
}

// MoveTo starts a new polyline at (x,y).
func (p *Path) MoveTo(x, y float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == MoveToCmd {
		// collapse consecutive moves
		p.d[len(p.d)-2], p.d[len(p.d)-1] = x, y
		return
	}
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
}

// LineTo adds a straight segment from the pen position to (x,y). On an empty path the segment starts at the origin.
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	return &Path{
		cmds: append([]PathCmd{}, p.cmds...),
		d:    append([]float64{}, p.d...),
	}
}

// Polylines returns the point lists of all polylines. Polylines consisting of a lone MoveTo are omitted.
func (p *Path) Polylines() [][]Point {
	polys := [][]Point{}
	var cur []Point
	for i, cmd := range p.cmds {
		pt := Point{p.d[2*i], p.d[2*i+1]}
		if cmd == MoveToCmd {
			if 1 < len(cur) {
				polys = append(polys, cur)
			}
			cur = []Point{pt}
		} else {
			cur = append(cur, pt)
		}
	}
	if 1 < len(cur) {
		polys = append(polys, cur)
	}
	return polys
}

// Segments returns every line segment as a start and end point.
func (p *Path) Segments() [][2]Point {
	segs := [][2]Point{}
	for i, cmd := range p.cmds {
		if cmd == LineToCmd {
			segs = append(segs, [2]Point{{p.d[2*i-2], p.d[2*i-1]}, {p.d[2*i], p.d[2*i+1]}})
		}
	}
	return segs
}

// Clip returns a new path with all segments clipped to rect. Segments outside rect or with non-finite coordinates are dropped, and a polyline that leaves rect continues as a new polyline where it re-enters.
func (p *Path) Clip(rect Rect) *Path {
	q := &Path{}
	for _, poly := range p.Polylines() {
		open := false
		for i := 1; i < len(poly); i++ {
			a, b, ok := ClipSegment(poly[i-1], poly[i], rect)
			if !ok {
				open = false
				continue
			}
			if !open {
				q.MoveTo(a.X, a.Y)
			}
			q.LineTo(b.X, b.Y)
			open = b == poly[i]
		}
	}
	return q
}

// Bounds returns the bounding box of the path.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i])
		xmax = math.Max(xmax, p.d[i])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// ToSVG returns the path as SVG path data, e.g. "M0 0L10 5".
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	for i, cmd := range p.cmds {
		if cmd == MoveToCmd {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(strconv.FormatFloat(Round(p.d[2*i], 3), 'f', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(Round(p.d[2*i+1], 3), 'f', -1, 64))
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

// ClipSegment clips the segment AB to rect using the Liang-Barsky algorithm. It returns false if the segment lies outside or has non-finite coordinates.
func ClipSegment(a, b Point, rect Rect) (Point, Point, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	} else if rect.Contains(a) && rect.Contains(b) {
		return a, b, true
	}

	t0, t1 := 0.0, 1.0
	d := b.Sub(a)
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{a.X - rect.X, rect.X + rect.W - a.X, a.Y - rect.Y, rect.Y + rect.H - a.Y}
	for i := 0; i < 4; i++ {
		if p[i] == 0.0 {
			if q[i] < 0.0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0.0 {
			if t1 < t {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}

	ca, cb := a, b
	if 0.0 < t0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1.0 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}
