package node

import (
	"context"
	"math"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/formula"
)

// IntSwissKnife is a read-only IInteger whose value is a formula over its
// Variables, truncated to int64. Most commonly used inline as an
// AddressKind term, but also addressable as an ordinary node.
type IntSwissKnife struct {
	Base        Base
	Elem        ElementBase
	Formula     formula.Expr
	Constants   []Constant
	Expressions []NamedExpr
	Variables   []Variable
	PSelected   []ID
}

func (*IntSwissKnife) isNodeData() {}

func (n *IntSwissKnife) NodeBase() Base                       { return n.Base }
func (n *IntSwissKnife) ElemBase() *ElementBase                { return &n.Elem }
func (n *IntSwissKnife) Streamable() bool                      { return false }
func (n *IntSwissKnife) SelectingNodes() []ID                  { return n.PSelected }
func (n *IntSwissKnife) Representation() IntegerRepresentation { return ReprLinear }
func (n *IntSwissKnife) Unit() (string, bool)                  { return "", false }
func (n *IntSwissKnife) ValidValueSet() []int64                { return nil }

// Value evaluates the formula and truncates the result to int64.
func (n *IntSwissKnife) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	env, err := buildEnv(ctx, dev, store, cx, n.Constants, n.Variables, n.Expressions)
	if err != nil {
		return 0, err
	}
	v, err := n.Formula.Eval(env)
	if err != nil {
		return 0, err
	}
	return int64(math.Trunc(v)), nil
}

// SetValue always fails: IntSwissKnife is read-only.
func (n *IntSwissKnife) SetValue(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "IntSwissKnife is read-only")
}

// Min is unbounded below; IntSwissKnife declares no range of its own.
func (n *IntSwissKnife) Min(context.Context, gencam.Device, Store, *Ctxt) (int64, error) { return math.MinInt64, nil }

// Max is unbounded above; IntSwissKnife declares no range of its own.
func (n *IntSwissKnife) Max(context.Context, gencam.Device, Store, *Ctxt) (int64, error) { return math.MaxInt64, nil }

// SetMin always fails: the range is not independently settable.
func (n *IntSwissKnife) SetMin(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "IntSwissKnife has no settable range")
}

// SetMax always fails for the same reason as SetMin.
func (n *IntSwissKnife) SetMax(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "IntSwissKnife has no settable range")
}

// Inc declares no fixed increment.
func (n *IntSwissKnife) Inc(context.Context, gencam.Device, Store, *Ctxt) (int64, bool, error) {
	return 0, false, nil
}

// IncMode declares no increment constraint.
func (n *IntSwissKnife) IncMode() IncrementMode { return IncNone }

// IsReadable composes the element gate; IntSwissKnife has no ValueKind to
// additionally gate on.
func (n *IntSwissKnife) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable is always false.
func (n *IntSwissKnife) IsWritable(context.Context, gencam.Device, Store, *Ctxt) (bool, error) {
	return false, nil
}

var _ IInteger = (*IntSwissKnife)(nil)
