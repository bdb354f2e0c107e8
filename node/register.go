package node

import (
	"context"

	"github.com/gencore/gencam"
)

// CachingMode selects how a register-backed node's Get/Set interact with
// the bound cache.Store.
type CachingMode int

const (
	// CacheWriteThrough serves reads from cache on hit and refreshes the
	// cache entry on every device read and write.
	CacheWriteThrough CachingMode = iota
	// CacheWriteAround serves reads from cache on hit but writes bypass the
	// cache, invalidating the entry instead of refreshing it.
	CacheWriteAround
	// CacheNoCache never reads from or writes to the cache.
	CacheNoCache
)

// Register is a raw byte-range register: GenApi's IRegister with no
// integer/float/string decode layered on top (used directly for opaque
// blocks like device firmware regions).
type Register struct {
	Base         Base
	Elem         ElementBase
	IsStreamable bool
	Address_     []AddressKind
	Length_      ImmOrPNode[int64]
	Caching      CachingMode
}

func (*Register) isNodeData() {}

func (n *Register) NodeBase() Base         { return n.Base }
func (n *Register) ElemBase() *ElementBase { return &n.Elem }
func (n *Register) Streamable() bool       { return n.IsStreamable }

// Address resolves the register's device address: the sum of every entry
// in its AddressKind stack (a literal base plus swiss-knife or
// index-selected displacements).
func (n *Register) Address(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	var addr int64
	for _, a := range n.Address_ {
		v, err := a.Resolve(ctx, dev, store, cx)
		if err != nil {
			return 0, err
		}
		addr += v
	}
	return addr, nil
}

// Length resolves the register's byte length.
func (n *Register) Length(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	return n.Length_.Value(ctx, dev, store, cx, integerResolver)
}

// Get reads the register, consulting and refreshing the cache per Caching.
func (n *Register) Get(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) ([]byte, error) {
	addr, err := n.Address(ctx, dev, store, cx)
	if err != nil {
		return nil, err
	}
	length, err := n.Length(ctx, dev, store, cx)
	if err != nil {
		return nil, err
	}
	if n.Caching != CacheNoCache {
		if data, ok := cx.Caches().GetCache(n.Base.ID, addr, length); ok {
			return data, nil
		}
	}
	buf := make([]byte, length)
	if err := dev.Read(ctx, addr, buf); err != nil {
		return nil, gencam.Wrap(gencam.KindIo, "register read", err).WithNode(n.Base.Name)
	}
	if n.Caching != CacheNoCache {
		cx.Caches().Cache(n.Base.ID, addr, length, buf)
	}
	return buf, nil
}

// Set writes data to the register, then updates or invalidates the cache
// entry per Caching.
func (n *Register) Set(ctx context.Context, data []byte, dev gencam.Device, store Store, cx *Ctxt) error {
	addr, err := n.Address(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	length, err := n.Length(ctx, dev, store, cx)
	if err != nil {
		return err
	}
	if int64(len(data)) != length {
		return gencam.NewError(gencam.KindInvalidBuffer, "register write length mismatch")
	}
	cx.InvalidateCacheBy(n.Base.ID)
	if err := dev.Write(ctx, addr, data); err != nil {
		return gencam.Wrap(gencam.KindIo, "register write", err).WithNode(n.Base.Name)
	}
	switch n.Caching {
	case CacheWriteThrough:
		cx.Caches().Cache(n.Base.ID, addr, length, data)
	case CacheWriteAround:
		cx.Caches().InvalidateOf(n.Base.ID)
	}
	return nil
}

var _ IRegister = (*Register)(nil)
