package equation

import (
	"math"

	"github.com/tdewolff/parse/v2/js"
)

// Function is a real function callable from an equation.
type Function struct {
	Args int
	F    func(args []float64) float64
}

func unary(f func(float64) float64) Function {
	return Function{1, func(args []float64) float64 { return f(args[0]) }}
}

func binaryFunc(f func(float64, float64) float64) Function {
	return Function{2, func(args []float64) float64 { return f(args[0], args[1]) }}
}

// Functions are the functions available in equations. Entries may be added before parsing.
var Functions = map[string]Function{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"sqrt":  unary(math.Sqrt),
	"cbrt":  unary(math.Cbrt),
	"abs":   unary(math.Abs),
	"exp":   unary(math.Exp),
	"ln":    unary(math.Log),
	"log":   unary(math.Log10),
	"log2":  unary(math.Log2),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"sign":  unary(sign),
	"atan2": binaryFunc(math.Atan2),
	"pow":   binaryFunc(math.Pow),
	"hypot": binaryFunc(math.Hypot),
	"min":   binaryFunc(math.Min),
	"max":   binaryFunc(math.Max),
	"mod":   binaryFunc(math.Mod),
}

// Constants are the named constants available in equations.
var Constants = map[string]float64{
	"pi":  math.Pi,
	"tau": 2.0 * math.Pi,
	"e":   math.E,
}

func sign(f float64) float64 {
	if f < 0.0 {
		return -1.0
	} else if 0.0 < f {
		return 1.0
	}
	return f
}

////////////////////////////////////////////////////////////////

type node interface {
	eval(x float64) float64
}

type number float64

func (n number) eval(float64) float64 {
	return float64(n)
}

type variable struct{}

func (variable) eval(x float64) float64 {
	return x
}

type negation struct {
	a node
}

func (n *negation) eval(x float64) float64 {
	return -n.a.eval(x)
}

type binary struct {
	op   js.TokenType
	a, b node
}

func (n *binary) eval(x float64) float64 {
	a, b := n.a.eval(x), n.b.eval(x)
	switch n.op {
	case js.AddToken:
		return a + b
	case js.SubToken:
		return a - b
	case js.MulToken:
		return a * b
	case js.DivToken:
		return a / b
	case js.ModToken:
		return math.Mod(a, b)
	case js.ExpToken:
		return math.Pow(a, b)
	}
	return math.NaN()
}

type call struct {
	f    Function
	args []node
}

func (n *call) eval(x float64) float64 {
	args := make([]float64, len(n.args))
	for i, arg := range n.args {
		args[i] = arg.eval(x)
	}
	return n.f.F(args)
}
