package graph

import (
	"math"

	"github.com/gcalc/gcalc"
)

// Curve is an equation taking part in the intersection search.
type Curve struct {
	ID        int
	Evaluator Evaluator
}

// Intersection is a point where the curves with ids A < B cross, in graph coordinates rounded to Options.RoundDecimals.
type Intersection struct {
	X, Y float64
	A, B int
}

// Point returns the intersection's graph coordinates.
func (p Intersection) Point() gcalc.Point {
	return gcalc.Point{X: p.X, Y: p.Y}
}

type sample struct {
	y  float64
	ok bool
}

// FindIntersections samples all curves every opts.IntersectionStride pixel columns and reports where the primary branches of two curves come closer than opts.Tolerance. A candidate is dropped when it lies within opts.SeparationRadius of the previous intersection of the same pair or of any intersection found before, so that adjacent samples around one crossing yield one point. Curves must be sorted by ascending id. A curve whose evaluator fails is excluded from the search and its error is returned. Intersections are returned in the order they were found: by the higher id of the pair, then the lower id, then from left to right.
func FindIntersections(vp Viewport, curves []Curve, opts *Options) ([]Intersection, []*EvaluationError) {
	stride := opts.IntersectionStride
	if stride < 1 {
		stride = 1
	}
	xs := []float64{}
	for px := 0; px < vp.Width; px += stride {
		xs = append(xs, vp.ToGraph(float64(px), 0.0).X)
	}

	var errs []*EvaluationError
	samples := make([][]sample, len(curves))
	for i, curve := range curves {
		ys := make([]sample, len(xs))
		for j, x := range xs {
			y, ok, err := primary(curve.Evaluator, x)
			if err != nil {
				errs = append(errs, &EvaluationError{curve.ID, x, err})
				ys = nil
				break
			}
			ys[j] = sample{y, ok}
		}
		samples[i] = ys
	}

	tolerance := opts.Tolerance(vp.Scale)
	found := []Intersection{}
	for b := range curves {
		if samples[b] == nil {
			continue
		}
		for a := 0; a < b; a++ {
			if samples[a] == nil {
				continue
			}

			var last gcalc.Point
			hasLast := false
			for j, x := range xs {
				sa, sb := samples[a][j], samples[b][j]
				if !sa.ok || !sb.ok || tolerance <= math.Abs(sa.y-sb.y) {
					continue
				}

				candidate := gcalc.Point{X: x, Y: (sa.y + sb.y) / 2.0}.Round(opts.RoundDecimals)
				if hasLast && candidate.Dist(last) < opts.SeparationRadius {
					continue
				} else if near(found, candidate, opts.SeparationRadius) {
					continue
				}
				found = append(found, Intersection{candidate.X, candidate.Y, curves[a].ID, curves[b].ID})
				last, hasLast = candidate, true
			}
		}
	}
	return found, errs
}

func near(points []Intersection, p gcalc.Point, radius float64) bool {
	for _, q := range points {
		if p.Dist(q.Point()) < radius {
			return true
		}
	}
	return false
}
