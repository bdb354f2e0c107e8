package node

import (
	"context"

	"github.com/gencore/gencam"
)

// Command is GenApi's ICommand: executing it writes CommandValue through
// the backing ValueKind, and IsDone reports whether the device has finished
// processing (the backing value no longer reads back as CommandValue).
type Command struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	ValueKind_   ValueKind[int64]
	CommandValue int64
}

func (*Command) isNodeData() {}

func (n *Command) NodeBase() Base         { return n.Base }
func (n *Command) ElemBase() *ElementBase { return &n.Elem }
func (n *Command) Streamable() bool       { return n.IsStreamable }

// Execute triggers the command.
func (n *Command) Execute(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) error {
	cx.InvalidateCacheBy(n.Base.ID)
	return n.ValueKind_.SetValue(ctx, n.CommandValue, dev, store, cx, integerResolver, integerResolver)
}

// IsDone reports whether the device has finished acting on the last
// Execute: the backing value must have moved away from CommandValue.
func (n *Command) IsDone(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
	v, err := n.ValueKind_.Value(ctx, dev, store, cx, integerResolver, integerResolver)
	if err != nil {
		return false, err
	}
	return v != n.CommandValue, nil
}

var _ ICommand = (*Command)(nil)
