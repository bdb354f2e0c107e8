package formula

import (
	"fmt"
	"math"

	"github.com/gencore/gencam"
)

// Expr is a parsed formula node. Every formula.Parse call returns one.
type Expr interface {
	Eval(env *EvalEnv) (float64, error)
}

type numberExpr float64

func (n numberExpr) Eval(*EvalEnv) (float64, error) { return float64(n), nil }

type varExpr string

func (v varExpr) Eval(env *EvalEnv) (float64, error) {
	val, ok := env.Get(string(v))
	if !ok {
		return 0, gencam.NewError(gencam.KindChunkDataMissing,
			fmt.Sprintf("unbound formula variable %q", string(v)))
	}
	return val, nil
}

type unaryExpr struct {
	op string
	x  Expr
}

func (u unaryExpr) Eval(env *EvalEnv) (float64, error) {
	v, err := u.x.Eval(env)
	if err != nil {
		return 0, err
	}
	switch u.op {
	case "-":
		return -v, nil
	case "!":
		return boolToFloat(!truthy(v)), nil
	case "~":
		return float64(^int64(v)), nil
	default:
		return 0, fmt.Errorf("formula: unknown unary operator %q", u.op)
	}
}

type binaryExpr struct {
	op   string
	l, r Expr
}

func truthy(v float64) bool { return v != 0 }

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (b binaryExpr) Eval(env *EvalEnv) (float64, error) {
	l, err := b.l.Eval(env)
	if err != nil {
		return 0, err
	}
	// Short-circuit && and || before evaluating the right operand.
	switch b.op {
	case "&&":
		if !truthy(l) {
			return 0, nil
		}
		r, err := b.r.Eval(env)
		if err != nil {
			return 0, err
		}
		return boolToFloat(truthy(r)), nil
	case "||":
		if truthy(l) {
			return 1, nil
		}
		r, err := b.r.Eval(env)
		if err != nil {
			return 0, err
		}
		return boolToFloat(truthy(r)), nil
	}

	r, err := b.r.Eval(env)
	if err != nil {
		return 0, err
	}
	li, ri := int64(l), int64(r)

	switch b.op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("formula: division by zero")
		}
		return l / r, nil
	case "%":
		if ri == 0 {
			return 0, fmt.Errorf("formula: modulo by zero")
		}
		return float64(li % ri), nil
	case "**":
		return math.Pow(l, r), nil
	case "&":
		return float64(li & ri), nil
	case "|":
		return float64(li | ri), nil
	case "^":
		return float64(li ^ ri), nil
	case "<<":
		return float64(li << uint(ri)), nil
	case ">>":
		return float64(li >> uint(ri)), nil
	case "<":
		return boolToFloat(l < r), nil
	case "<=":
		return boolToFloat(l <= r), nil
	case ">":
		return boolToFloat(l > r), nil
	case ">=":
		return boolToFloat(l >= r), nil
	case "==":
		return boolToFloat(l == r), nil
	case "!=":
		return boolToFloat(l != r), nil
	default:
		return 0, fmt.Errorf("formula: unknown binary operator %q", b.op)
	}
}

type ternaryExpr struct {
	cond, then, els Expr
}

func (t ternaryExpr) Eval(env *EvalEnv) (float64, error) {
	c, err := t.cond.Eval(env)
	if err != nil {
		return 0, err
	}
	if truthy(c) {
		return t.then.Eval(env)
	}
	return t.els.Eval(env)
}

type callExpr struct {
	name string
	args []Expr
}

func (c callExpr) Eval(env *EvalEnv) (float64, error) {
	vals := make([]float64, len(c.args))
	for i, a := range c.args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch c.name {
	case "ABS":
		if len(vals) != 1 {
			return 0, fmt.Errorf("formula: ABS takes 1 argument")
		}
		return math.Abs(vals[0]), nil
	case "SGN":
		if len(vals) != 1 {
			return 0, fmt.Errorf("formula: SGN takes 1 argument")
		}
		switch {
		case vals[0] > 0:
			return 1, nil
		case vals[0] < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case "SQRT":
		if len(vals) != 1 {
			return 0, fmt.Errorf("formula: SQRT takes 1 argument")
		}
		if vals[0] < 0 {
			return 0, fmt.Errorf("formula: SQRT of negative number")
		}
		return math.Sqrt(vals[0]), nil
	case "TRUNC":
		if len(vals) != 1 {
			return 0, fmt.Errorf("formula: TRUNC takes 1 argument")
		}
		return math.Trunc(vals[0]), nil
	case "MIN":
		if len(vals) != 2 {
			return 0, fmt.Errorf("formula: MIN takes 2 arguments")
		}
		return math.Min(vals[0], vals[1]), nil
	case "MAX":
		if len(vals) != 2 {
			return 0, fmt.Errorf("formula: MAX takes 2 arguments")
		}
		return math.Max(vals[0], vals[1]), nil
	default:
		return 0, fmt.Errorf("formula: unknown function %q", c.name)
	}
}
