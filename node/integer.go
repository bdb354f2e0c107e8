package node

import (
	"context"

	"github.com/gencore/gencam"
)

// Integer is a plain i64-valued node: GenApi's IInteger over a ValueKind
// rather than a device register.
type Integer struct {
	Base           Base
	Elem           ElementBase
	IsStreamable   bool
	ValueKind_     ValueKind[int64]
	Min_           ImmOrPNode[int64]
	Max_           ImmOrPNode[int64]
	Inc_            ImmOrPNode[int64]
	HasInc          bool
	ValidValueSet_  []int64
	Unit_           string
	HasUnit         bool
	Representation_ IntegerRepresentation
	PSelected       []ID
}

func (*Integer) isNodeData() {}

func (n *Integer) NodeBase() Base          { return n.Base }
func (n *Integer) ElemBase() *ElementBase  { return &n.Elem }
func (n *Integer) Streamable() bool        { return n.IsStreamable }
func (n *Integer) SelectingNodes() []ID    { return n.PSelected }
func (n *Integer) Representation() IntegerRepresentation { return n.Representation_ }
func (n *Integer) Unit() (string, bool)                   { return n.Unit_, n.HasUnit }
func (n *Integer) ValidValueSet() []int64                 { return n.ValidValueSet_ }

// IncMode reports ListIncrement when a ValidValueSet is declared, a fixed
// increment when Inc is, and no constraint otherwise.
func (n *Integer) IncMode() IncrementMode {
	switch {
	case len(n.ValidValueSet_) > 0:
		return IncList
	case n.HasInc:
		return IncFixed
	default:
		return IncNone
	}
}

// Value resolves the node's current i64 value.
func (n *Integer) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, integerResolver)
}

// SetValue invalidates dependents' caches, then writes through ValueKind.
func (n *Integer) SetValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, v, dev, store, cx, integerResolver, integerResolver)
}

// Min resolves the node's minimum bound.
func (n *Integer) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Min_.Value(ctx, dev, store, cx, integerResolver)
}

// Max resolves the node's maximum bound.
func (n *Integer) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Max_.Value(ctx, dev, store, cx, integerResolver)
}

// SetMin writes through the Min bound, if it is a writable PNode.
func (n *Integer) SetMin(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	return n.Min_.SetValue(ctx, v, dev, store, cx, integerResolver)
}

// SetMax writes through the Max bound, if it is a writable PNode.
func (n *Integer) SetMax(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	return n.Max_.SetValue(ctx, v, dev, store, cx, integerResolver)
}

// Inc resolves the fixed increment, if the node declares one.
func (n *Integer) Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, bool, error) {
	if !n.HasInc {
		return 0, false, nil
	}
	v, err := n.Inc_.Value(ctx, dev, store, cx, integerResolver)
	return v, true, err
}

// IsReadable composes the element gate with the ValueKind resolution gate.
func (n *Integer) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsReadable(ctx, dev, store, cx, integerResolver, integerResolver)
}

// IsWritable composes the element gate with the ValueKind resolution gate.
func (n *Integer) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsWritable(ctx, dev, store, cx, integerResolver, integerResolver)
}

var _ IInteger = (*Integer)(nil)
