package equation

import (
	"errors"
	"math"
	"testing"

	"github.com/gcalc/gcalc/graph"
	"github.com/tdewolff/test"
)

func eval(t *testing.T, s string, x float64) float64 {
	t.Helper()
	eq, err := Parse(s)
	test.Error(t, err, s)
	vals, err := eq.Evaluate(x)
	test.Error(t, err, s)
	test.That(t, 0 < len(vals), s)
	if !vals[0].Defined {
		return math.NaN()
	}
	return vals[0].Y
}

func TestParse(t *testing.T) {
	var tests = []struct {
		eq string
		x  float64
		y  float64
	}{
		{"y = x", 3.0, 3.0},
		{"x", 3.0, 3.0},
		{"y=2", 3.0, 2.0},
		{"y = 2*x + 1", 3.0, 7.0},
		{"y = 1 + 2*x", 3.0, 7.0},
		{"y = (1 + 2)*x", 3.0, 9.0},
		{"y = x^2", 3.0, 9.0},
		{"y = x**2", 3.0, 9.0},
		{"y = x^2 + 1", 3.0, 10.0},
		{"y = -x^2", 3.0, -9.0},
		{"y = 2^3^2", 0.0, 512.0},
		{"y = 2^-1", 0.0, 0.5},
		{"y = -(-x)", 3.0, 3.0},
		{"y = - -x", 3.0, 3.0},
		{"y = +x", 3.0, 3.0},
		{"y = 10 - 4 - 3", 0.0, 3.0},
		{"y = 12 / 3 / 2", 0.0, 2.0},
		{"y = x % 4", 7.0, 3.0},
		{"y = 1.5e1 * .5", 0.0, 7.5},
		{"y = sqrt(x)", 16.0, 4.0},
		{"y = abs(x) + sign(x)", -3.0, 2.0},
		{"y = max(x, 2) + min(x, 2)", 5.0, 7.0},
		{"y = pow(2, x)", 3.0, 8.0},
		{"y = ln(e)", 0.0, 1.0},
		{"y = log(1000)", 0.0, 3.0},
		{"y = cos(pi)", 0.0, -1.0},
		{"y = floor(x) + ceil(x)", 1.5, 3.0},
		{"y = sin(x)/x", 0.0, math.NaN()},
		{"y = sqrt(x)", -1.0, math.NaN()},
		{"y = 1/x", 0.0, math.NaN()},
		{"  y = x\n", 2.0, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.eq, func(t *testing.T) {
			test.Float(t, eval(t, tt.eq, tt.x), tt.y)
		})
	}
}

func TestBranches(t *testing.T) {
	eq := MustParse("y = sqrt(4 - x^2), -sqrt(4 - x^2)")
	test.T(t, eq.Branches(), 2)
	test.T(t, eq.String(), "y = sqrt(4 - x^2), -sqrt(4 - x^2)")

	vals, err := eq.Evaluate(0.0)
	test.Error(t, err)
	test.T(t, vals, []graph.Value{graph.Defined(2.0), graph.Defined(-2.0)})

	vals, _ = eq.Evaluate(3.0)
	test.T(t, vals, []graph.Value{graph.Undefined, graph.Undefined})
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		eq  string
		err error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"y", ErrSyntax},
		{"y x", ErrSyntax},
		{"y = ", ErrSyntax},
		{"y = (x", ErrSyntax},
		{"y = x)", ErrSyntax},
		{"y = 2x", ErrSyntax},
		{"y = x x", ErrSyntax},
		{"y = 0x1F", ErrSyntax},
		{"y = 'a'", ErrSyntax},
		{"y = sin(x", ErrSyntax},
		{"y = sin(x, 2)", ErrSyntax},
		{"y = max(x)", ErrSyntax},
		{"y = foo(x)", ErrFunction},
		{"y = z", ErrVariable},
		{"y = x + t * 2", ErrVariable},
	}
	for _, tt := range tests {
		t.Run(tt.eq, func(t *testing.T) {
			_, err := Parse(tt.eq)
			test.That(t, errors.Is(err, tt.err), err)
		})
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParse("y = )")
}

func TestGraphEvaluator(t *testing.T) {
	g, err := graph.New(400, 200, nil)
	test.Error(t, err)
	test.Error(t, g.EquationAdded(0, MustParse("y = x"), nil))
	test.Error(t, g.EquationAdded(1, MustParse("y = 2"), nil))
	test.T(t, g.Intersections(), []graph.Intersection{{X: 2.0, Y: 2.0, A: 0, B: 1}})

	test.Error(t, g.EquationAdded(2, MustParse("y = sqrt(x)"), nil))
	test.Error(t, g.Redraw())
}
