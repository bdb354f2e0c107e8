package node

import (
	"context"
	"math"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/codec"
)

// BitMask selects either a single bit or an inclusive bit range out of a
// register's decoded integer value.
type BitMask struct {
	isRange bool
	bit     int
	lo, hi  int
}

// SingleBit constructs a one-bit mask.
func SingleBit(bit int) BitMask { return BitMask{bit: bit} }

// BitRange constructs an inclusive [lo, hi] bit-range mask, lo <= hi.
func BitRange(lo, hi int) BitMask { return BitMask{isRange: true, lo: lo, hi: hi} }

func (m BitMask) bounds() (lo, hi int) {
	if m.isRange {
		return m.lo, m.hi
	}
	return m.bit, m.bit
}

func (m BitMask) mask() int64 {
	lo, hi := m.bounds()
	width := hi - lo + 1
	if width >= 64 {
		return int64(math.MaxInt64)
	}
	return (int64(1)<<uint(width) - 1) << uint(lo)
}

// Extract pulls this mask's bits out of raw, right-aligned.
func (m BitMask) Extract(raw int64) int64 {
	lo, _ := m.bounds()
	return (raw & m.mask()) >> uint(lo)
}

// Pack writes v's low bits into raw at this mask's position, leaving every
// other bit of raw untouched.
func (m BitMask) Pack(raw, v int64) int64 {
	lo, _ := m.bounds()
	cleared := raw &^ m.mask()
	return cleared | ((v << uint(lo)) & m.mask())
}

// MaskedIntReg is an IntReg that additionally extracts/packs a bit
// subfield of the register's decoded integer.
type MaskedIntReg struct {
	Reg             Register
	Mask            BitMask
	Sign            codec.Sign
	Endianness      codec.Endianness
	Unit_           string
	HasUnit         bool
	Representation_ IntegerRepresentation
	PSelected       []ID
}

func (*MaskedIntReg) isNodeData() {}

func (n *MaskedIntReg) NodeBase() Base                       { return n.Reg.Base }
func (n *MaskedIntReg) ElemBase() *ElementBase                { return &n.Reg.Elem }
func (n *MaskedIntReg) Streamable() bool                      { return n.Reg.IsStreamable }
func (n *MaskedIntReg) SelectingNodes() []ID                   { return n.PSelected }
func (n *MaskedIntReg) Representation() IntegerRepresentation  { return n.Representation_ }
func (n *MaskedIntReg) Unit() (string, bool)                   { return n.Unit_, n.HasUnit }
func (n *MaskedIntReg) ValidValueSet() []int64                 { return nil }

func (n *MaskedIntReg) rawValue(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	b, err := n.Reg.Get(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return codec.IntFromSlice(b, n.Endianness, n.Sign)
}

// Value reads the register and extracts the masked bit subfield.
func (n *MaskedIntReg) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	raw, err := n.rawValue(ctx, dev, store, cx)
	if err != nil {
		return 0, err
	}
	return n.Mask.Extract(raw), nil
}

// SetValue reads the register's current bits, packs v into the masked
// subfield, and writes the result back.
func (n *MaskedIntReg) SetValue(ctx context.Context, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
	raw, err := n.rawValue(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	packed := n.Mask.Pack(raw, v)
	length, err := n.Reg.Length(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	b, err := codec.BytesFromInt(packed, int(length), n.Endianness, n.Sign)
	if err != nil {
		return err
	}
	return n.Reg.Set(ctx, b, dev, store, cx)
}

// Min is always 0 for a masked bitfield.
func (n *MaskedIntReg) Min(context.Context, gencam.Device, Store, *Ctxt) (int64, error) { return 0, nil }

// Max is the bitfield's full-range value (all masked bits set).
func (n *MaskedIntReg) Max(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Mask.Extract(n.Mask.mask()), nil
}

// SetMin always fails with NotWritable: a bitfield's bounds are derived from
// its width, not independently settable.
func (n *MaskedIntReg) SetMin(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "masked bitfield bounds are not settable")
}

// SetMax always fails with NotWritable, for the same reason as SetMin.
func (n *MaskedIntReg) SetMax(context.Context, int64, gencam.Device, Store, *Ctxt) error {
	return gencam.NewError(gencam.KindNotWritable, "masked bitfield bounds are not settable")
}

// Inc is always an implicit 1 for a masked integer bitfield.
func (n *MaskedIntReg) Inc(context.Context, gencam.Device, Store, *Ctxt) (int64, bool, error) {
	return 1, true, nil
}

// IncMode is always a fixed increment of 1.
func (n *MaskedIntReg) IncMode() IncrementMode { return IncFixed }

// IsReadable delegates to the backing register's element gate.
func (n *MaskedIntReg) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable delegates to the backing register's element gate.
func (n *MaskedIntReg) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
}

var _ IInteger = (*MaskedIntReg)(nil)
