package node

import (
	"context"

	"github.com/gencore/gencam"
)

// integerResolver, floatResolver, stringResolver, and booleanResolver are
// the Resolver[T] instances every concrete variant's ValueKind[T] fields
// are driven by: they bridge a PNode reference to the capability interface
// that knows how to read/write it.
var (
	integerResolver = Resolver[int64]{
		ReadNode: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
			k, err := ExpectIIntegerKind(id, store)
			if err != nil {
				return 0, err
			}
			return k.Value(ctx, dev, store, cx)
		},
		WriteNode: func(ctx context.Context, id ID, v int64, dev gencam.Device, store Store, cx *Ctxt) error {
			k, err := ExpectIIntegerKind(id, store)
			if err != nil {
				return err
			}
			return k.SetValue(ctx, v, dev, store, cx)
		},
		IsReadable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIIntegerKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsReadable(ctx, dev, store, cx)
		},
		IsWritable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIIntegerKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsWritable(ctx, dev, store, cx)
		},
	}

	floatResolver = Resolver[float64]{
		ReadNode: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (float64, error) {
			k, err := ExpectIFloatKind(id, store)
			if err != nil {
				return 0, err
			}
			return k.Value(ctx, dev, store, cx)
		},
		WriteNode: func(ctx context.Context, id ID, v float64, dev gencam.Device, store Store, cx *Ctxt) error {
			k, err := ExpectIFloatKind(id, store)
			if err != nil {
				return err
			}
			return k.SetValue(ctx, v, dev, store, cx)
		},
		IsReadable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIFloatKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsReadable(ctx, dev, store, cx)
		},
		IsWritable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIFloatKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsWritable(ctx, dev, store, cx)
		},
	}

	stringResolver = Resolver[string]{
		ReadNode: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (string, error) {
			k, err := ExpectIStringKind(id, store)
			if err != nil {
				return "", err
			}
			return k.Value(ctx, dev, store, cx)
		},
		WriteNode: func(ctx context.Context, id ID, v string, dev gencam.Device, store Store, cx *Ctxt) error {
			k, err := ExpectIStringKind(id, store)
			if err != nil {
				return err
			}
			return k.SetValue(ctx, v, dev, store, cx)
		},
		IsReadable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIStringKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsReadable(ctx, dev, store, cx)
		},
		IsWritable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIStringKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsWritable(ctx, dev, store, cx)
		},
	}

	booleanResolver = Resolver[bool]{
		ReadNode: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIBooleanKind(id, store)
			if err != nil {
				return false, err
			}
			return k.Value(ctx, dev, store, cx)
		},
		WriteNode: func(ctx context.Context, id ID, v bool, dev gencam.Device, store Store, cx *Ctxt) error {
			k, err := ExpectIBooleanKind(id, store)
			if err != nil {
				return err
			}
			return k.SetValue(ctx, v, dev, store, cx)
		},
		IsReadable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIBooleanKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsReadable(ctx, dev, store, cx)
		},
		IsWritable: func(ctx context.Context, id ID, dev gencam.Device, store Store, cx *Ctxt) (bool, error) {
			k, err := ExpectIBooleanKind(id, store)
			if err != nil {
				return false, err
			}
			return k.IsWritable(ctx, dev, store, cx)
		},
	}
)
