package node

import (
	"context"

	"github.com/gencore/gencam"
)

// RegPIndex is the "address = offset + value of the node PIndex selects"
// addressing mode.
type RegPIndex struct {
	Offset  ImmOrPNode[int64]
	PIndex  ID
}

// AddressKind is the resolved form of every address term a register-backed
// node can declare: a literal/PNode offset, an inline IntSwissKnife
// formula, or index-selected addressing. A register carries a stack of
// these; its effective address is their sum.
type AddressKind struct {
	tag           addressTag
	address       ImmOrPNode[int64]
	intSwissKnife ID
	pIndex        RegPIndex
}

type addressTag int

const (
	addrLiteral addressTag = iota
	addrIntSwissKnife
	addrPIndex
)

// NewAddress constructs the literal/PNode address arm.
func NewAddress(a ImmOrPNode[int64]) AddressKind { return AddressKind{tag: addrLiteral, address: a} }

// NewAddressIntSwissKnife constructs the inline-formula address arm.
func NewAddressIntSwissKnife(id ID) AddressKind {
	return AddressKind{tag: addrIntSwissKnife, intSwissKnife: id}
}

// NewAddressPIndex constructs the index-selected address arm.
func NewAddressPIndex(p RegPIndex) AddressKind { return AddressKind{tag: addrPIndex, pIndex: p} }

// Resolve computes the concrete device address.
func (a AddressKind) Resolve(ctx context.Context, dev gencam.Device, store Store, cx *Ctxt) (int64, error) {
	switch a.tag {
	case addrLiteral:
		return a.address.Value(ctx, dev, store, cx, integerResolver)
	case addrIntSwissKnife:
		k, err := ExpectIIntegerKind(a.intSwissKnife, store)
		if err != nil {
			return 0, err
		}
		return k.Value(ctx, dev, store, cx)
	default:
		offset, err := a.pIndex.Offset.Value(ctx, dev, store, cx, integerResolver)
		if err != nil {
			return 0, err
		}
		k, err := ExpectIIntegerKind(a.pIndex.PIndex, store)
		if err != nil {
			return 0, err
		}
		idx, err := k.Value(ctx, dev, store, cx)
		if err != nil {
			return 0, err
		}
		return offset + idx, nil
	}
}
