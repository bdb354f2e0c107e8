package node

import (
	"context"

	"github.com/gencore/gencam"
)

// Float is GenApi's IFloat over a ValueKind rather than a device register.
type Float struct {
	Base            Base
	Elem            ElementBase
	IsStreamable    bool
	ValueKind_        ValueKind[float64]
	Min_              ImmOrPNode[float64]
	Max_              ImmOrPNode[float64]
	Inc_              ImmOrPNode[float64]
	HasInc            bool
	Unit_             string
	HasUnit           bool
	Representation_   FloatRepresentation
	DisplayNotation_  DisplayNotation
	DisplayPrecision_ int
}

func (*Float) isNodeData() {}

func (n *Float) NodeBase() Base                      { return n.Base }
func (n *Float) ElemBase() *ElementBase              { return &n.Elem }
func (n *Float) Streamable() bool                    { return n.IsStreamable }
func (n *Float) Representation() FloatRepresentation { return n.Representation_ }
func (n *Float) Unit() (string, bool)                { return n.Unit_, n.HasUnit }
func (n *Float) DisplayNotation() DisplayNotation    { return n.DisplayNotation_ }
func (n *Float) DisplayPrecision() int               { return n.DisplayPrecision_ }

// Value resolves the node's current f64 value.
func (n *Float) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	return n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, floatResolver)
}

// SetValue invalidates dependents' caches, then writes through ValueKind.
func (n *Float) SetValue(ctx context.Context, v float64, dev gencam.Device, store Store, cx *Ctxt) error {
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, v, dev, store, cx, integerResolver, floatResolver)
}

// Min resolves the node's minimum bound.
func (n *Float) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	return n.Min_.Value(ctx, dev, store, cx, floatResolver)
}

// Max resolves the node's maximum bound.
func (n *Float) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	return n.Max_.Value(ctx, dev, store, cx, floatResolver)
}

// Inc resolves the fixed increment, if the node declares one.
func (n *Float) Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, bool, error) {
	if !n.HasInc {
		return 0, false, nil
	}
	v, err := n.Inc_.Value(ctx, dev, store, cx, floatResolver)
	return v, true, err
}

// IsReadable composes the element gate with the ValueKind resolution gate.
func (n *Float) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsReadable(ctx, dev, store, cx, integerResolver, floatResolver)
}

// IsWritable composes the element gate with the ValueKind resolution gate.
func (n *Float) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsWritable(ctx, dev, store, cx, integerResolver, floatResolver)
}

var _ IFloat = (*Float)(nil)
