package node

import (
	"context"

	"github.com/gencore/gencam"
)

// Resolver supplies the node-capability dispatch ValueKind[T]/ImmOrPNode[T]
// need to resolve a PNode reference, without requiring T itself to carry
// any methods (T is a plain primitive: int64, float64, string, or bool).
// Each capability's Value/SetValue method passes the package-level
// Resolver[T] for its kind (e.g. Integer.Value passes integerResolver,
// whose ReadNode asks store for the referenced node's IInteger projection).
type Resolver[T any] struct {
	ReadNode     func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (T, error)
	WriteNode    func(ctx context.Context, id ID, v T, dev gencam.Device, store Store, cx *Ctxt) error
	IsReadable   func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
	IsWritable   func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error)
}

// ImmOrPNode is either a literal T baked in at build time, or a reference to
// another node whose own capability projection produces a T. Instantiated
// directly over the resolved primitive rather than over a value-store id,
// since this module builds its graphs through the Go API rather than by
// parsing XML-interned literals.
type ImmOrPNode[T any] struct {
	IsNode bool
	Imm    T
	Node   ID
}

// Immediate constructs the literal arm.
func Immediate[T any](v T) ImmOrPNode[T] { return ImmOrPNode[T]{Imm: v} }

// PNode constructs the node-reference arm.
func PNode[T any](id ID) ImmOrPNode[T] { return ImmOrPNode[T]{IsNode: true, Node: id} }

// Value resolves n to a concrete T.
func (n ImmOrPNode[T]) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[T]) (T, error) {
	if !n.IsNode {
		return n.Imm, nil
	}
	return r.ReadNode(ctx, n.Node, dev, store, cx)
}

// SetValue writes through n. The literal arm is never writable.
func (n ImmOrPNode[T]) SetValue(ctx context.Context, v T, dev gencam.Device, store Store, cx *Ctxt, r Resolver[T]) error {
	if !n.IsNode {
		return gencam.NewError(gencam.KindNotWritable, "immediate operand is not writable")
	}
	return r.WriteNode(ctx, n.Node, v, dev, store, cx)
}

// ValueIndexed pairs one PIndex table row with the index value that selects
// it.
type ValueIndexed[T any] struct {
	Index   int64
	Indexed ImmOrPNode[T]
}

// PValue is the "read/write through another node, optionally fanning the
// write out to copies" arm of ValueKind.
type PValue[T any] struct {
	PValue ID
	Copies []ID
}

// Value reads through p.PValue.
func (p PValue[T]) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[T]) (T, error) {
	return r.ReadNode(ctx, p.PValue, dev, store, cx)
}

// SetValue writes p.PValue then fans the same value out to every copy
// target, in order, matching PValue's role in the original node graph.
func (p PValue[T]) SetValue(ctx context.Context, v T, dev gencam.Device, store Store, cx *Ctxt, r Resolver[T]) error {
	if err := r.WriteNode(ctx, p.PValue, v, dev, store, cx); err != nil {
		return err
	}
	for _, copyID := range p.Copies {
		if err := r.WriteNode(ctx, copyID, v, dev, store, cx); err != nil {
			return err
		}
	}
	return nil
}

// PIndex is the "select by another node's current integer value" arm of
// ValueKind: Index is read, matched against Indexed's rows, and falls back
// to Default if nothing matches.
type PIndex[T any] struct {
	Index   ImmOrPNode[int64]
	Indexed []ValueIndexed[T]
	Default ImmOrPNode[T]
}

func (p PIndex[T]) resolve(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64]) (ImmOrPNode[T], int64, error) {
	var zero ImmOrPNode[T]
	idx, err := p.Index.Value(ctx, dev, store, cx, idxR)
	if err != nil {
		return zero, 0, err
	}
	for _, row := range p.Indexed {
		if row.Index == idx {
			return row.Indexed, idx, nil
		}
	}
	return p.Default, idx, nil
}

// Value resolves the active row (or the default) and reads through it.
func (p PIndex[T]) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) (T, error) {
	arm, _, err := p.resolve(ctx, dev, store, cx, idxR)
	if err != nil {
		var zero T
		return zero, err
	}
	return arm.Value(ctx, dev, store, cx, r)
}

// SetValue resolves the active row (or the default) and writes through it.
func (p PIndex[T]) SetValue(ctx context.Context, v T, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) error {
	arm, _, err := p.resolve(ctx, dev, store, cx, idxR)
	if err != nil {
		return err
	}
	return arm.SetValue(ctx, v, dev, store, cx, r)
}

type valueKindTag int

const (
	vkValue valueKindTag = iota
	vkPValue
	vkPIndex
)

// ValueKind is the three-way "where does this node's value actually live"
// arm every value-bearing capability (IInteger, IFloat, IBoolean, IString)
// is built on: a fixed literal, a reference to another node (with optional
// write fan-out), or an index-selected table of references.
type ValueKind[T any] struct {
	tag    valueKindTag
	value  T
	pvalue PValue[T]
	pindex PIndex[T]
}

// NewValueKind constructs the literal arm.
func NewValueKind[T any](v T) ValueKind[T] { return ValueKind[T]{tag: vkValue, value: v} }

// NewValueKindPValue constructs the PValue arm.
func NewValueKindPValue[T any](pvalue ID, copies ...ID) ValueKind[T] {
	return ValueKind[T]{tag: vkPValue, pvalue: PValue[T]{PValue: pvalue, Copies: copies}}
}

// NewValueKindPIndex constructs the PIndex arm.
func NewValueKindPIndex[T any](pi PIndex[T]) ValueKind[T] {
	return ValueKind[T]{tag: vkPIndex, pindex: pi}
}

// Value resolves the node's current value.
func (vk ValueKind[T]) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) (T, error) {
	switch vk.tag {
	case vkValue:
		return vk.value, nil
	case vkPValue:
		return vk.pvalue.Value(ctx, dev, store, cx, r)
	default:
		return vk.pindex.Value(ctx, dev, store, cx, idxR, r)
	}
}

// SetValue writes the node's value. The literal arm is never writable.
func (vk ValueKind[T]) SetValue(ctx context.Context, v T, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) error {
	switch vk.tag {
	case vkValue:
		return gencam.NewError(gencam.KindNotWritable, "fixed literal value is not writable")
	case vkPValue:
		return vk.pvalue.SetValue(ctx, v, dev, store, cx, r)
	default:
		return vk.pindex.SetValue(ctx, v, dev, store, cx, idxR, r)
	}
}

// IsReadable reports whether reading through vk would currently succeed.
func (vk ValueKind[T]) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) (bool, error) {
	switch vk.tag {
	case vkValue:
		return true, nil
	case vkPValue:
		return r.IsReadable(ctx, vk.pvalue.PValue, dev, store, cx)
	default:
		arm, _, err := vk.pindex.resolve(ctx, dev, store, cx, idxR)
		if err != nil {
			return false, err
		}
		if !arm.IsNode {
			return true, nil
		}
		return r.IsReadable(ctx, arm.Node, dev, store, cx)
	}
}

// IsWritable reports whether writing through vk would currently succeed.
func (vk ValueKind[T]) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, idxR Resolver[int64], r Resolver[T]) (bool, error) {
	switch vk.tag {
	case vkValue:
		return false, nil
	case vkPValue:
		return r.IsWritable(ctx, vk.pvalue.PValue, dev, store, cx)
	default:
		arm, _, err := vk.pindex.resolve(ctx, dev, store, cx, idxR)
		if err != nil {
			return false, err
		}
		if !arm.IsNode {
			return false, nil
		}
		return r.IsWritable(ctx, arm.Node, dev, store, cx)
	}
}
