package node

import (
	"bytes"
	"context"

	"golang.org/x/text/unicode/norm"

	"github.com/gencore/gencam"
)

// StringReg is a device-register-backed IString: a fixed-length byte range
// holding a NUL-terminated UTF-8 string, normalized to NFC on both read and
// write so comparisons against symbolic constants (e.g. enumeration-like
// string matching some GenICam devices use) are canonical-equivalence safe.
type StringReg struct {
	Reg       Register
	MaxLength_ int64
}

func (*StringReg) isNodeData() {}

func (n *StringReg) NodeBase() Base         { return n.Reg.Base }
func (n *StringReg) ElemBase() *ElementBase { return &n.Reg.Elem }
func (n *StringReg) Streamable() bool       { return n.Reg.IsStreamable }

// Value reads the register and decodes its NUL-terminated UTF-8 content.
func (n *StringReg) Value(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (string, error) {
	b, err := n.Reg.Get(ctx, dev, store, cx)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return norm.NFC.String(string(b)), nil
}

// SetValue normalizes v, NUL-pads it to the register's length, and writes
// it. A value that leaves no room for the trailing NUL is rejected with
// InvalidData.
func (n *StringReg) SetValue(ctx context.Context, v string, dev gencam.Device, store Store, cx *Ctxt) error {
	length, err := n.Reg.Length(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	normalized := norm.NFC.String(v)
	raw := []byte(normalized)
	if int64(len(raw)) >= length {
		return gencam.NewError(gencam.KindInvalidData, "string exceeds register length")
	}
	buf := make([]byte, length)
	copy(buf, raw)
	return n.Reg.Set(ctx, buf, dev, store, cx)
}

// MaxLength returns the declared maximum string length (at most Length-1,
// reserving the trailing NUL).
func (n *StringReg) MaxLength(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.MaxLength_, nil
}

// IsReadable delegates to the backing register's element gate.
func (n *StringReg) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsReadable(ctx, dev, store, cx, booleanResolver)
}

// IsWritable delegates to the backing register's element gate.
func (n *StringReg) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	return n.Reg.Elem.IsWritable(ctx, dev, store, cx, booleanResolver)
}

var _ IString = (*StringReg)(nil)
