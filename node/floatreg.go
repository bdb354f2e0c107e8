package node

import (
	"context"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/codec"
)

// FloatReg is a device-register-backed IFloat.
type FloatReg struct {
	Reg               Register
	Endianness        codec.Endianness
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

func (*FloatReg) isNodeData() {}

func (n *FloatReg) NodeBase() Base                      { return n.Reg.Base }
func (n *FloatReg) ElemBase() *ElementBase              { return &n.Reg.Elem }
func (n *FloatReg) Streamable() bool                    { return n.Reg.IsStreamable }
func (n *FloatReg) Representation() FloatRepresentation { return n.Representation_ }
func (n *FloatReg) Unit() (string, bool)                { return n.Unit_, n.HasUnit }
func (n *FloatReg) DisplayNotation() DisplayNotation    { return n.DisplayNotation_ }
func (n *FloatReg) DisplayPrecision() int               { return n.DisplayPrecision_ }

// Value reads the register and decodes it as a float.
func (n *FloatReg) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	b, err := n.Reg.Get(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return codec.FloatFromSlice(b, n.Endianness)
}

// SetValue encodes v and writes it to the register.
func (n *FloatReg) SetValue(ctx context.Context, v float64, dev gencam.Device, store Store, cx *Ctxt) error {
	length, err := n.Reg.Length(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	b, err := codec.BytesFromFloat(v, int(length), n.Endianness)
	if err != nil {
		return err
	}
	return n.Reg.Set(ctx, b, dev, store, cx)
}

// Min resolves the node's minimum bound.
func (n *FloatReg) Min(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	return n.Min_.Value(ctx, dev, store, cx, floatResolver)
}

// Max resolves the node's maximum bound.
func (n *FloatReg) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
	return n.Max_.Value(ctx, dev, store, cx, floatResolver)
}

// Inc resolves the fixed increment, if the node declares one.
func (n *FloatReg) Inc(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (float64, bool, error) {
	if !n.HasInc {
		return 0, false, nil
	}
	v, err := n.Inc_.Value(ctx, dev, store, cx, floatResolver)
	return v, true, err
}

// IsReadable delegates to the backing register's element gate.
func (n *FloatReg) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable delegates to the backing register's element gate.
func (n *FloatReg) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
}

var _ IFloat = (*FloatReg)(nil)
