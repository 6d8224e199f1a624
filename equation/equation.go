// Package equation parses explicit equations such as "y = sin(x)/x" and evaluates them for use with graph.
package equation

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gcalc/gcalc/graph"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	ErrEmpty    = errors.New("empty equation")
	ErrSyntax   = errors.New("syntax error")
	ErrFunction = errors.New("unknown function")
	ErrVariable = errors.New("unknown variable")
)

// Equation is an explicit equation y = f(x). It may have several comma separated branches, as in "y = sqrt(x), -sqrt(x)", of which the first is the primary branch.
type Equation struct {
	text     string
	branches []node
}

// Parse parses an equation of the form "y = expr[, expr...]", the "y =" prefix may be omitted. Expressions use the variable x, the constants pi, tau and e, the operators + - * / % and ^ (or **), and the functions listed in Functions.
func Parse(s string) (*Equation, error) {
	p := &parser{
		l: js.NewLexer(parse.NewInputString(s)),
	}
	p.next()
	if p.eof() && p.err == nil {
		return nil, ErrEmpty
	}

	if p.tt == js.IdentifierToken && string(p.data) == "y" {
		p.next()
		if p.tt != js.EqToken {
			p.fail("expected = after y")
		}
		p.next()
	}

	branches := []node{p.parseExpr()}
	for p.tt == js.CommaToken {
		p.next()
		branches = append(branches, p.parseExpr())
	}
	if !p.eof() {
		p.fail("unexpected %s", p.data)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &Equation{strings.TrimSpace(s), branches}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Equation {
	eq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return eq
}

// Evaluate returns the value of every branch at x. Values that are not a finite number, such as sqrt(-1) or 1/0, are undefined.
func (eq *Equation) Evaluate(x float64) ([]graph.Value, error) {
	vals := make([]graph.Value, len(eq.branches))
	for i, branch := range eq.branches {
		if y := branch.eval(x); !math.IsNaN(y) && !math.IsInf(y, 0) {
			vals[i] = graph.Defined(y)
		}
	}
	return vals, nil
}

// Branches returns the number of branches.
func (eq *Equation) Branches() int {
	return len(eq.branches)
}

func (eq *Equation) String() string {
	return eq.text
}

////////////////////////////////////////////////////////////////

type parser struct {
	l    *js.Lexer
	tt   js.TokenType
	data []byte
	err  error
}

func (p *parser) next() {
	for {
		p.tt, p.data = p.l.Next()
		if p.tt != js.WhitespaceToken && p.tt != js.LineTerminatorToken {
			break
		}
	}
	if p.tt == js.ErrorToken && p.err == nil {
		if err := p.l.Err(); err != nil && err != io.EOF {
			p.err = fmt.Errorf("%w: %v", ErrSyntax, err)
		}
	}
}

func (p *parser) eof() bool {
	return p.tt == js.ErrorToken
}

func (p *parser) fail(format string, a ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrSyntax}, a...)...)
	}
	p.tt = js.ErrorToken
}

// parseExpr parses a sum.
func (p *parser) parseExpr() node {
	left := p.parseTerm()
	for p.tt == js.AddToken || p.tt == js.SubToken {
		op := p.tt
		p.next()
		left = &binary{op, left, p.parseTerm()}
	}
	return left
}

// parseTerm parses a product.
func (p *parser) parseTerm() node {
	left := p.parseUnary()
	for p.tt == js.MulToken || p.tt == js.DivToken || p.tt == js.ModToken {
		op := p.tt
		p.next()
		left = &binary{op, left, p.parseUnary()}
	}
	return left
}

// parseUnary parses a signed power, the sign binds weaker than the exponent so that -x^2 = -(x^2).
func (p *parser) parseUnary() node {
	if p.tt == js.SubToken {
		p.next()
		return &negation{p.parseUnary()}
	} else if p.tt == js.AddToken {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower parses a right-associative exponentiation.
func (p *parser) parsePower() node {
	base := p.parseOperand()
	if p.tt == js.BitXorToken || p.tt == js.ExpToken {
		p.next()
		return &binary{js.ExpToken, base, p.parseUnary()}
	}
	return base
}

func (p *parser) parseOperand() node {
	switch p.tt {
	case js.DecimalToken, js.IntegerToken:
		f, n := strconv.ParseFloat(p.data)
		if n != len(p.data) {
			p.fail("invalid number %s", p.data)
			return number(math.NaN())
		}
		p.next()
		return number(f)
	case js.OpenParenToken:
		p.next()
		inner := p.parseExpr()
		if p.tt != js.CloseParenToken {
			p.fail("expected )")
			return inner
		}
		p.next()
		return inner
	case js.IdentifierToken:
		name := string(p.data)
		p.next()
		if p.tt == js.OpenParenToken {
			return p.parseCall(name)
		} else if name == "x" {
			return variable{}
		} else if c, ok := Constants[name]; ok {
			return number(c)
		}
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s", ErrVariable, name)
		}
		p.tt = js.ErrorToken
		return number(math.NaN())
	case js.ErrorToken:
		p.fail("unexpected end of equation")
	default:
		p.fail("unexpected %s", p.data)
	}
	return number(math.NaN())
}

func (p *parser) parseCall(name string) node {
	f, ok := Functions[name]
	if !ok {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s", ErrFunction, name)
		}
		p.tt = js.ErrorToken
		return number(math.NaN())
	}

	p.next() // (
	args := []node{}
	if p.tt != js.CloseParenToken {
		args = append(args, p.parseExpr())
		for p.tt == js.CommaToken {
			p.next()
			args = append(args, p.parseExpr())
		}
	}
	if p.tt != js.CloseParenToken {
		p.fail("expected ) after arguments of %s", name)
		return number(math.NaN())
	}
	p.next()
	if len(args) != f.Args {
		p.fail("%s takes %d arguments, got %d", name, f.Args, len(args))
		return number(math.NaN())
	}
	return &call{f, args}
}
