package gcalc

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Round rounds f to the given number of decimals, halfway cases away from zero.
func Round(f float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(f*p) / p
}

// IsFinite returns true if f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsFinite returns true if both coordinates are finite.
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between P and Q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Length()
}

// Round rounds both coordinates to the given number of decimals.
func (p Point) Round(decimals int) Point {
	return Point{Round(p.X, decimals), Round(p.Y, decimals)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", num(p.X), num(p.Y))
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its origin at (X,Y).
type Rect struct {
	X, Y, W, H float64
}

// Contains returns true if p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", num(r.X), num(r.Y), num(r.X+r.W), num(r.Y+r.H))
}
