package node

import (
	"context"

	"github.com/gencore/gencam"
)

// EnumEntry is one named value an Enumeration can hold. It carries no
// capability of its own beyond INode; it is looked up by its owning
// Enumeration, never addressed directly as an IInteger/IString.
//
// NumericValue carries the optional float reading some entries declare in
// addition to their integer Value (e.g. a gain entry whose raw code maps to
// a dB figure); IsSelfClearing marks entries the device resets on its own
// after a write (trigger-style states).
type EnumEntry struct {
	Base            Base
	Elem            ElementBase
	Value           int64
	Symbolic        string
	NumericValue    float64
	HasNumericValue bool
	IsSelfClearing  bool
}

func (*EnumEntry) isNodeData() {}

func (n *EnumEntry) NodeBase() Base         { return n.Base }
func (n *EnumEntry) ElemBase() *ElementBase { return &n.Elem }
func (n *EnumEntry) Streamable() bool       { return false }

// SymbolicName returns the entry's symbolic, falling back to its node name
// when the builder left Symbolic unset (the two coincide in most graphs).
func (n *EnumEntry) SymbolicName() string {
	if n.Symbolic != "" {
		return n.Symbolic
	}
	return n.Base.Name
}

// Enumeration is GenApi's IEnumeration: a named closed set of integer
// values, backed by the same ValueKind[int64] machinery as Integer.
type Enumeration struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	ValueKind_   ValueKind[int64]
	Entries_     []ID
	PSelected    []ID
}

func (*Enumeration) isNodeData() {}

func (n *Enumeration) NodeBase() Base         { return n.Base }
func (n *Enumeration) ElemBase() *ElementBase { return &n.Elem }
func (n *Enumeration) Streamable() bool       { return n.IsStreamable }
func (n *Enumeration) Entries() []ID          { return n.Entries_ }
func (n *Enumeration) SelectingNodes() []ID   { return n.PSelected }

// CurrentValue resolves the enumeration's raw integer value.
func (n *Enumeration) CurrentValue(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, integerResolver)
}

// CurrentEntry resolves CurrentValue and finds the EnumEntry it names.
// Returns *gencam.Error{Kind: InvalidData} if no entry in Entries carries
// that value.
func (n *Enumeration) CurrentEntry(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (ID, error) {
	v, err := n.CurrentValue(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	for _, eid := range n.Entries_ {
		d, ok := store.Node(eid)
		if !ok {
			continue
		}
		entry, ok := d.(*EnumEntry)
		if ok && entry.Value == v {
			return eid, nil
		}
	}
	return 0, gencam.NewError(gencam.KindInvalidData, "current value does not match any enum entry")
}

// SetEntryBySymbolic resolves symbolic to its entry's value and writes
// through SetEntryByValue.
func (n *Enumeration) SetEntryBySymbolic(ctx context.Context, symbolic string, dev gencam.Device, store Store, cx *Ctxt) error {
	for _, eid := range n.Entries_ {
		d, ok := store.Node(eid)
		if !ok {
			continue
		}
		entry, ok := d.(*EnumEntry)
		if !ok || entry.SymbolicName() != symbolic {
			continue
		}
		return n.SetEntryByValue(ctx, entry.Value, dev, store, cx)
	}
	return gencam.NewError(gencam.KindInvalidData, "unknown enumeration entry: "+symbolic)
}

// SetEntryByValue rejects any v not named by an entry in Entries_, then
// writes it through ValueKind.
func (n *Enumeration) SetEntryByValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	found := false
	for _, eid := range n.Entries_ {
		d, ok := store.Node(eid)
		if !ok {
			continue
		}
		if entry, ok := d.(*EnumEntry); ok && entry.Value == v {
			found = true
			break
		}
	}
	if !found {
		return gencam.NewError(gencam.KindInvalidData, "value does not name an enumeration entry")
	}
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, v, dev, store, cx, integerResolver, integerResolver)
}

// IsReadable composes the element gate with the ValueKind resolution gate.
func (n *Enumeration) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsReadable(ctx, dev, store, cx, integerResolver, integerResolver)
}

// IsWritable composes the element gate with the ValueKind resolution gate.
func (n *Enumeration) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	ok, err := n.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
	if err != nil || !ok {
		return false, err
	}
	return n.ValueKind_.IsWritable(ctx, dev, store, cx, integerResolver, integerResolver)
}

var _ IEnumeration = (*Enumeration)(nil)
