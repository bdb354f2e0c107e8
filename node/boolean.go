package node

import (
	"context"

	"github.com/gencore/gencam"
)

// Boolean is GenApi's IBoolean: a single on/off value resolved through a
// ValueKind[bool].
type Boolean struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	ValueKind_   ValueKind[bool]
}

func (*Boolean) isNodeData() {}

func (n *Boolean) NodeBase() Base         { return n.Base }
func (n *Boolean) ElemBase() *ElementBase { return &n.Elem }
func (n *Boolean) Streamable() bool       { return n.IsStreamable }

// Value resolves the node's current bool value.
func (n *Boolean) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, booleanResolver)
}

// SetValue invalidates dependents' caches, then writes through ValueKind.
func (n *Boolean) SetValue(ctx context.Context, v bool, dev gencam.Device, store Store, cx *Ctxt) error {
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, v, dev, store, cx, integerResolver, booleanResolver)
}

// IsReadable composes the element gate with the ValueKind resolution gate.
func (n *Boolean) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsReadable(ctx, dev, store, cx, integerResolver, booleanResolver)
}

// IsWritable composes the element gate with the ValueKind resolution gate.
func (n *Boolean) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsWritable(ctx, dev, store, cx, integerResolver, booleanResolver)
}

var _ IBoolean = (*Boolean)(nil)
