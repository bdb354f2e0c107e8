package node

import (
	"context"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/internal/ambient"
)

// Port is GenApi's IPort: a direct, addressed pass-through to the Device,
// with no value/cache semantics of its own. Used for chunk-data and
// file-access style nodes that read/write arbitrary device memory outside
// the named-register model. Alignment, when non-zero, is the byte boundary
// every address this port is asked to access must fall on.
type Port struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	Alignment    int64
}

func (*Port) isNodeData() {}

func (n *Port) NodeBase() Base         { return n.Base }
func (n *Port) ElemBase() *ElementBase { return &n.Elem }
func (n *Port) Streamable() bool       { return n.IsStreamable }

// Read validates address alignment, then passes straight through to dev.
func (n *Port) Read(ctx context.Context, address int64, buf []byte, dev gencam.Device) error {
	if !ambient.Aligned(address, n.Alignment) {
		return gencam.NewError(gencam.KindInvalidBuffer, "port address is not aligned")
	}
	return dev.Read(ctx, address, buf)
}

// Write validates address alignment, then passes straight through to dev.
func (n *Port) Write(ctx context.Context, address int64, data []byte, dev gencam.Device) error {
	if !ambient.Aligned(address, n.Alignment) {
		return gencam.NewError(gencam.KindInvalidBuffer, "port address is not aligned")
	}
	return dev.Write(ctx, address, data)
}

var _ IPort = (*Port)(nil)
