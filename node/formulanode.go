package node

import (
	"context"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/formula"
)

// Variable is one named binding a SwissKnife/IntSwissKnife/Converter/
// IntConverter formula can reference: either a literal or another node's
// currently resolved float value (GenApi's pVariable).
type Variable struct {
	Name  string
	Value ImmOrPNode[float64]
}

// Constant is a fixed named binding (GenApi's Constant element): unlike a
// Variable it never references another node.
type Constant struct {
	Name  string
	Value float64
}

// NamedExpr is a named sub-formula (GenApi's Expression element). Each is
// evaluated against the bindings established so far and its result bound
// under Name, so later expressions and the main formula can reference it.
type NamedExpr struct {
	Name string
	Expr formula.Expr
}

// variableResolver reads a pVariable's current value as a float64,
// accepting either an IFloat or an IInteger target, since GenApi formulas
// commonly reference integer nodes (e.g. a selector's current value) as
// variables, not just float-valued ones.
var variableResolver = Resolver[float64]{
	ReadNode: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
		if k, ok := AsIFloatKind(id, store); ok {
			return k.Value(ctx, dev, store, cx)
		}
		if k, ok := AsIIntegerKind(id, store); ok {
			v, err := k.Value(ctx, dev, store, cx)
			return float64(v), err
		}
		return 0, gencam.NewError(gencam.KindInvalidNode, "pVariable target is neither IFloat nor IInteger")
	},
}

// buildEnv assembles a formula's evaluation environment: constants first,
// then pVariable reads, then named sub-expressions in declaration order
// (each may reference everything bound before it).
func buildEnv(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, consts []Constant, vars []Variable, exprs []NamedExpr) (*formula.EvalEnv, error) {
	env := formula.NewEvalEnv()
	for _, c := range consts {
		env.Set(c.Name, c.Value)
	}
	for _, v := range vars {
		val, err := v.Value.Value(ctx, dev, store, cx, variableResolver)
		if err != nil {
			return nil, err
		}
		env.Set(v.Name, val)
	}
	for _, e := range exprs {
		val, err := e.Expr.Eval(env)
		if err != nil {
			return nil, err
		}
		env.Set(e.Name, val)
	}
	return env, nil
}
