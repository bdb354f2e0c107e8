package node

import (
	"context"
	"math"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/formula"
)

// Converter is a read/write IFloat that transforms another node's raw value
// (bound as "FROM" in both formulas) through FormulaTo on read and
// FormulaFrom on write.
type Converter struct {
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
}

func (*Converter) isNodeData() {}

func (n *Converter) NodeBase() Base         { return n.Base }
func (n *Converter) ElemBase() *ElementBase { return &n.Elem }
func (n *Converter) Streamable() bool       { return false }
func (n *Converter) Unit() (string, bool)   { return n.Unit_, n.HasUnit }
func (n *Converter) Representation() FloatRepresentation { return FloatReprLinear }
func (n *Converter) DisplayNotation() DisplayNotation    { return NotationAutomatic }
func (n *Converter) DisplayPrecision() int               { return 0 }

// Inc declares no fixed increment of its own.
func (n *Converter) Inc(context.Context, gencam.Device, Store, *Ctxt) (float64, bool, error) {
	return 0, false, nil
}

// Value reads the backing node's raw value and applies FormulaTo.
func (n *Converter) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	backing, err := ExpectIFloatKind(n.PValue, store)
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
	env.Set("FROM", raw)
	return n.FormulaTo.Eval(env)
}

// SetValue applies FormulaFrom to v and writes the result through the
// backing node.
func (n *Converter) SetValue(ctx context.Context, v float64, dev gencam.Device, store Store, cx *Ctxt) error {
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return err
	}
	env.Set("FROM", v)
	raw, err := n.FormulaFrom.Eval(env)
	if err != nil {
		return err
	}
	cx.InvalidateCacheBy(n.Base.ID)
	k, err := ExpectIFloatKind(n.PValue, store)
	if err != nil {
		return err
	}
	return k.SetValue(ctx, raw, dev, store, cx)
}

// convertedBounds evaluates FormulaTo at the backing node's Min and Max.
// Only meaningful when IsLinear holds: a linear mapping takes its extremes
// at the interval's endpoints, so the converted range is whichever order
// the two results land in.
func (n *Converter) convertedBounds(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (lo, hi float64, err error) {
	k, err := ExpectIFloatKind(n.PValue, store)
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
	env.Set("FROM", rawMin)
	lo, err = n.FormulaTo.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	env.Set("FROM", rawMax)
	hi, err = n.FormulaTo.Eval(env)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// Min converts the backing node's bounds through FormulaTo and returns the
// smaller, so a decreasing linear mapping cannot invert the range. Without
// IsLinear no monotonicity can be assumed and the range is unbounded.
func (n *Converter) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	if !n.IsLinear {
		return math.Inf(-1), nil
	}
	lo, hi, err := n.convertedBounds(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return math.Min(lo, hi), nil
}

// Max is the upper-bound counterpart of Min.
func (n *Converter) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	if !n.IsLinear {
		return math.Inf(1), nil
	}
	lo, hi, err := n.convertedBounds(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return math.Max(lo, hi), nil
}

// IsReadable composes the element gate with the backing node's readability.
func (n *Converter) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	k, err := ExpectIFloatKind(n.PValue, store)
	if err != nil {
		return false, err
	}
	return k.IsReadable(ctx, dev, store, cx)
}

// IsWritable composes the element gate with the backing node's writability.
func (n *Converter) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	k, err := ExpectIFloatKind(n.PValue, store)
	if err != nil {
		return false, err
	}
	return k.IsWritable(ctx, dev, store, cx)
}

var _ IFloat = (*Converter)(nil)
