package node

import (
	"context"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/codec"
)

// IntReg is a device-register-backed IInteger: its value is the register's
// bytes decoded through codec under a fixed endianness/sign.
type IntReg struct {
	Reg             Register
	Sign            codec.Sign
	Endianness      codec.Endianness
	Min_            ImmOrPNode[int64]
	Max_            ImmOrPNode[int64]
	Inc_            ImmOrPNode[int64]
	HasInc          bool
	Unit_           string
	HasUnit         bool
	Representation_ IntegerRepresentation
	PSelected       []ID
}

func (*IntReg) isNodeData() {}

func (n *IntReg) NodeBase() Base                        { return n.Reg.Base }
func (n *IntReg) ElemBase() *ElementBase                 { return &n.Reg.Elem }
func (n *IntReg) Streamable() bool                       { return n.Reg.IsStreamable }
func (n *IntReg) SelectingNodes() []ID                   { return n.PSelected }
func (n *IntReg) Representation() IntegerRepresentation  { return n.Representation_ }
func (n *IntReg) Unit() (string, bool)                   { return n.Unit_, n.HasUnit }
func (n *IntReg) ValidValueSet() []int64                 { return nil }

// Value reads the register and decodes it.
func (n *IntReg) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	b, err := n.Reg.Get(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return codec.IntFromSlice(b, n.Endianness, n.Sign)
}

// SetValue encodes v and writes it to the register.
func (n *IntReg) SetValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	length, err := n.Reg.Length(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	b, err := codec.BytesFromInt(v, int(length), n.Endianness, n.Sign)
	if err != nil {
		return err
	}
	return n.Reg.Set(ctx, b, dev, store, cx)
}

// Min resolves the node's minimum bound.
func (n *IntReg) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Min_.Value(ctx, dev, store, cx, integerResolver)
}

// Max resolves the node's maximum bound.
func (n *IntReg) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Max_.Value(ctx, dev, store, cx, integerResolver)
}

// SetMin writes through the Min bound, if it is a writable PNode.
func (n *IntReg) SetMin(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	return n.Min_.SetValue(ctx, v, dev, store, cx, integerResolver)
}

// SetMax writes through the Max bound, if it is a writable PNode.
func (n *IntReg) SetMax(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	return n.Max_.SetValue(ctx, v, dev, store, cx, integerResolver)
}

// Inc resolves the fixed increment, if the node declares one.
func (n *IntReg) Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, bool, error) {
	if !n.HasInc {
		return 0, false, nil
	}
	v, err := n.Inc_.Value(ctx, dev, store, cx, integerResolver)
	return v, true, err
}

// IncMode reports a fixed increment when Inc is declared.
func (n *IntReg) IncMode() IncrementMode {
	if n.HasInc {
		return IncFixed
	}
	return IncNone
}

// IsReadable delegates to the backing register's element gate.
func (n *IntReg) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable delegates to the backing register's element gate.
func (n *IntReg) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
}

var _ IInteger = (*IntReg)(nil)
