package node

import (
	"context"
	"math"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/formula"
)

// IntConverter is IInteger's analogue of Converter: it transforms a backing
// IInteger target's raw value (bound as "FROM") through FormulaTo on read
// and FormulaFrom on write, truncating formula results to int64.
type IntConverter struct {
	Base        Base
	Elem        ElementBase
	PValue      ID
	FormulaTo   formula.Expr
	FormulaFrom formula.Expr
	Constants   []Constant
	Expressions []NamedExpr
	Variables   []Variable
	IsLinear    bool
	Unit_       string
	HasUnit     bool
	PSelected   []ID
}

func (*IntConverter) isNodeData() {}

func (n *IntConverter) NodeBase() Base         { return n.Base }
func (n *IntConverter) ElemBase() *ElementBase { return &n.Elem }
func (n *IntConverter) Streamable() bool       { return false }
func (n *IntConverter) SelectingNodes() []ID   { return n.PSelected }
func (n *IntConverter) Unit() (string, bool)   { return n.Unit_, n.HasUnit }
func (n *IntConverter) Representation() IntegerRepresentation { return ReprLinear }
func (n *IntConverter) ValidValueSet() []int64                { return nil }

// Value reads the backing node's raw value and applies FormulaTo, truncating
// the result to int64.
func (n *IntConverter) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	backing, err := ExpectIIntegerKind(n.PValue, store)
	if err != nil {
		return 0, err
	}
	raw, err := backing.Value(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return 0, err
	}
	env.Set("FROM", float64(raw))
	v, err := n.FormulaTo.Eval(env)
	if err != nil {
		return 0, err
	}
	return int64(math.Trunc(v)), nil
}

// SetValue applies FormulaFrom to v and writes the truncated result through
// the backing node.
func (n *IntConverter) SetValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return err
	}
	env.Set("FROM", float64(v))
	raw, err := n.FormulaFrom.Eval(env)
	if err != nil {
		return err
	}
	cx.InvalidateCacheBy(n.Base.ID)
	k, err := ExpectIIntegerKind(n.PValue, store)
	if err != nil {
		return err
	}
	return k.SetValue(ctx, int64(math.Trunc(raw)), dev, store, cx)
}

// convertedBounds evaluates FormulaTo at the backing node's Min and Max.
// Only meaningful when IsLinear holds: a linear mapping takes its extremes
// at the interval's endpoints, so the converted range is whichever order
// the two results land in.
func (n *IntConverter) convertedBounds(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (lo, hi int64, err error) {
	k, err := ExpectIIntegerKind(n.PValue, store)
	if err != nil {
		return 0, 0, err
	}
	rawMin, err := k.Min(ctx, dev, store, cx)
	if err != nil {
		return 0, 0, err
	}
	rawMax, err := k.Max(ctx, dev, store, cx)
	if err != nil {
		return 0, 0, err
	}
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return 0, 0, err
	}
	env.Set("FROM", float64(rawMin))
	v, err := n.FormulaTo.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	lo = int64(math.Trunc(v))
	env.Set("FROM", float64(rawMax))
	v, err = n.FormulaTo.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	hi = int64(math.Trunc(v))
	return lo, hi, nil
}

// Min converts the backing node's bounds through FormulaTo and returns the
// smaller, so a decreasing linear mapping cannot invert the range. Without
// IsLinear no monotonicity can be assumed and the range is unbounded.
func (n *IntConverter) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	if !n.IsLinear {
		return math.MinInt64, nil
	}
	lo, hi, err := n.convertedBounds(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return min(lo, hi), nil
}

// Max is the upper-bound counterpart of Min.
func (n *IntConverter) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	if !n.IsLinear {
		return math.MaxInt64, nil
	}
	lo, hi, err := n.convertedBounds(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return max(lo, hi), nil
}

// SetMin always fails: the range is derived from the backing node, not
// independently settable.
func (n *IntConverter) SetMin(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "IntConverter range follows its backing node")
}

// SetMax always fails for the same reason as SetMin.
func (n *IntConverter) SetMax(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "IntConverter range follows its backing node")
}

// Inc declares no fixed increment of its own.
func (n *IntConverter) Inc(context.Context, gencam.Device, Store, *Ctxt) (int64, bool, error) {
	return 0, false, nil
}

// IncMode declares no increment constraint of its own.
func (n *IntConverter) IncMode() IncrementMode { return IncNone }

// IsReadable composes the element gate with the backing node's readability.
func (n *IntConverter) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	k, err := ExpectIIntegerKind(n.PValue, store)
	if err != nil {
		return false, err
	}
	return k.IsReadable(ctx, dev, store, cx)
}

// IsWritable composes the element gate with the backing node's writability.
func (n *IntConverter) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	k, err := ExpectIIntegerKind(n.PValue, store)
	if err != nil {
		return false, err
	}
	return k.IsWritable(ctx, dev, store, cx)
}

var _ IInteger = (*IntConverter)(nil)
