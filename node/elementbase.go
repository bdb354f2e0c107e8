package node

import (
	"context"

	"github.com/gencore/gencam"
)

func (eb *ElementBase) resolvedImplemented(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[bool]) (bool, error) {
	if !eb.HasPIsImpl {
		return eb.IsImplemented, nil
	}
	return r.ReadNode(ctx, eb.PIsImplemented, dev, store, cx)
}

func (eb *ElementBase) resolvedAvailable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[bool]) (bool, error) {
	if !eb.HasPIsAvail {
		return eb.IsAvailable, nil
	}
	return r.ReadNode(ctx, eb.PIsAvailable, dev, store, cx)
}

func (eb *ElementBase) resolvedLocked(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[bool]) (bool, error) {
	if !eb.HasPIsLocked {
		return eb.IsLocked, nil
	}
	return r.ReadNode(ctx, eb.PIsLocked, dev, store, cx)
}

// IsReadable reports whether a read through this element's own gating state
// (implemented, available, imposed access mode) would succeed,
// independent of whatever ValueKind arm the owning capability resolves
// through. Callers AND this with their ValueKind.IsReadable result.
func (eb *ElementBase) IsReadable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[bool]) (bool, error) {
	impl, err := eb.resolvedImplemented(ctx, dev, store, cx, r)
	if err != nil || !impl {
		return false, err
	}
	avail, err := eb.resolvedAvailable(ctx, dev, store, cx, r)
	if err != nil || !avail {
		return false, err
	}
	return eb.ImposedAccess.Readable(), nil
}

// IsWritable reports the analogous write-side gate, additionally requiring
// the element not be locked.
func (eb *ElementBase) IsWritable(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt, r Resolver[bool]) (bool, error) {
	impl, err := eb.resolvedImplemented(ctx, dev, store, cx, r)
	if err != nil || !impl {
		return false, err
	}
	avail, err := eb.resolvedAvailable(ctx, dev, store, cx, r)
	if err != nil || !avail {
		return false, err
	}
	locked, err := eb.resolvedLocked(ctx, dev, store, cx, r)
	if err != nil || locked {
		return false, err
	}
	return eb.ImposedAccess.Writable(), nil
}
