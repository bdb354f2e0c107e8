package node

import (
	"context"

	"github.com/gencore/gencam"
)

// String is GenApi's IString over a ValueKind rather than a device
// register.
type String struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	ValueKind_   ValueKind[string]
	MaxLength_   int64
}

func (*String) isNodeData() {}

func (n *String) NodeBase() Base         { return n.Base }
func (n *String) ElemBase() *ElementBase { return &n.Elem }
func (n *String) Streamable() bool       { return n.IsStreamable }

// Value resolves the node's current string value.
func (n *String) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (string, error) {
	return n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, stringResolver)
}

// SetValue invalidates dependents' caches, then writes through ValueKind.
func (n *String) SetValue(ctx context.Context, v string, dev gencam.Device, store Store, cx *Ctxt) error {
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, v, dev, store, cx, integerResolver, stringResolver)
}

// MaxLength returns the node's declared maximum string length.
func (n *String) MaxLength(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.MaxLength_, nil
}

// IsReadable composes the element gate with the ValueKind resolution gate.
func (n *String) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsReadable(ctx, dev, store, cx, integerResolver, stringResolver)
}

// IsWritable composes the element gate with the ValueKind resolution gate.
func (n *String) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsWritable(ctx, dev, store, cx, integerResolver, stringResolver)
}

var _ IString = (*String)(nil)
