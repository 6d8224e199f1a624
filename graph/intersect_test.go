package graph

import (
	"errors"
	"testing"

	"github.com/gcalc/gcalc"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tdewolff/test"
)

func TestTolerance(t *testing.T) {
	opts := DefaultOptions
	test.Float(t, opts.Tolerance(1.0), 0.01)
	test.Float(t, opts.Tolerance(0.5), 0.02)
	test.Float(t, opts.Tolerance(0.01), 1.0)
	test.Float(t, opts.Tolerance(4.0), 0.01, "floor")
	test.Float(t, opts.Tolerance(0.0), 0.01)
}

func TestFindIntersectionsCross(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{{0, linear(1.0, 0.0)}, {1, linear(-1.0, 0.0)}}

	points, errs := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, len(errs), 0)
	test.T(t, len(points), 1, "adjacent samples are merged")
	test.That(t, points[0].Point().Dist(gcalc.Point{}) < 0.3)
	test.T(t, points[0].A, 0)
	test.T(t, points[0].B, 1)
}

func TestFindIntersectionsZoom(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{{0, linear(1.0, 0.0)}, {1, linear(-1.0, 0.0)}}
	vp := NewViewport(400, 200, 50.0)
	for _, scale := range []float64{0.25, 0.5, 1.0, 2.0, 4.0, 8.0} {
		vp.Scale = scale
		points, _ := FindIntersections(vp, curves, &opts)
		test.T(t, len(points), 1, "scale", scale)
		test.That(t, points[0].Point().Dist(gcalc.Point{}) < 0.3, "scale", scale)
	}
}

func TestFindIntersectionsSeparation(t *testing.T) {
	opts := DefaultOptions
	// nearly coincident lines are within tolerance everywhere
	curves := []Curve{{2, constant(0.0)}, {5, constant(0.004)}}
	points, _ := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.That(t, 10 < len(points), len(points))
	for i, p := range points {
		test.T(t, p.Y, 0.0)
		test.T(t, p.A, 2)
		test.T(t, p.B, 5)
		for _, q := range points[:i] {
			test.That(t, opts.SeparationRadius <= p.Point().Dist(q.Point()), p, q)
		}
	}
	test.T(t, points[0].X, -4.0, "found from left to right")
	test.That(t, points[0].X < points[1].X)
}

func TestFindIntersectionsRounding(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{{0, linear(3.0, 1.0/3.0)}, {1, constant(1.0 / 3.0)}}
	points, _ := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, points, []Intersection{{0.0, 0.33, 0, 1}})
}

func TestFindIntersectionsGlobalDedup(t *testing.T) {
	opts := DefaultOptions
	// three lines through (1,1)
	curves := []Curve{
		{0, linear(1.0, 0.0)},
		{1, constant(1.0)},
		{2, linear(-1.0, 2.0)},
	}
	points, _ := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, len(points), 1, "shared intersections are reported once")
	test.T(t, points[0], Intersection{X: 1.0, Y: 1.0, A: 0, B: 1})
}

func TestFindIntersectionsGaps(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{{0, sqrtEvaluator()}, {1, linear(-1.0, 0.0)}}
	points, _ := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, points, []Intersection{{0.0, 0.0, 0, 1}})

	curves = []Curve{{0, sqrtEvaluator()}, {1, constant(-1.0)}}
	points, _ = FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, len(points), 0, "undefined samples never intersect")
}

func TestFindIntersectionsFailure(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{
		{0, linear(1.0, 0.0)},
		{3, failing(-2.0)},
		{4, constant(2.0)},
	}
	points, errs := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	test.T(t, len(errs), 1)
	test.T(t, errs[0].ID, 3)
	test.That(t, errors.Is(errs[0], errEval))
	test.T(t, points, []Intersection{{2.0, 2.0, 0, 4}}, "failed curve is excluded")
}

func TestFindIntersectionsOrder(t *testing.T) {
	opts := DefaultOptions
	curves := []Curve{
		{0, constant(1.0)},
		{1, linear(1.0, 0.0)},
		{2, constant(-1.0)},
	}
	points, _ := FindIntersections(NewViewport(400, 200, 50.0), curves, &opts)
	want := []Intersection{{1.0, 1.0, 0, 1}, {-1.0, -1.0, 1, 2}}
	if diff := cmp.Diff(want, points, cmpopts.EquateApprox(0.0, 1e-9)); diff != "" {
		t.Fatalf("intersections mismatch (-want +got):\n%s", diff)
	}
}
