package node_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gencore/gencam/node"
)

func TestAddressLiteralArm(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	a := node.NewAddress(node.Immediate[int64](4096))
	addr, err := a.Resolve(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(4096), addr)
}

func TestAddressIntSwissKnifeArm(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	formulaNode, _ := parseFormula(t, "4096 + 16")

	iskID := store.GetOrIntern("BaseAddressCalc")
	store.StoreNode(iskID, &node.IntSwissKnife{
		Base:    node.Base{ID: iskID, Name: "BaseAddressCalc"},
		Elem:    readableElem(),
		Formula: formulaNode,
	})

	a := node.NewAddressIntSwissKnife(iskID)
	addr, err := a.Resolve(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(4112), addr)
}

func TestAddressPIndexArm(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	selectorID := store.GetOrIntern("BankSelector")
	store.StoreNode(selectorID, &node.Integer{
		Base:       node.Base{ID: selectorID, Name: "BankSelector"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(3)),
	})

	a := node.NewAddressPIndex(node.RegPIndex{
		Offset: node.Immediate[int64](1000),
		PIndex: selectorID,
	})
	addr, err := a.Resolve(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(1003), addr)
}

// TestRegisterAddressStackSums verifies that a register's effective address
// is the sum of every entry in its AddressKind stack.
func TestRegisterAddressStackSums(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	offsetID := store.GetOrIntern("BankOffset")
	store.StoreNode(offsetID, &node.Integer{
		Base:       node.Base{ID: offsetID, Name: "BankOffset"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(0x100)),
	})

	id := store.GetOrIntern("BankedRegister")
	reg := &node.Register{
		Base: node.Base{ID: id, Name: "BankedRegister"},
		Elem: readableElem(),
		Address_: []node.AddressKind{
			node.NewAddress(node.Immediate[int64](0x1000)),
			node.NewAddress(node.PNode[int64](offsetID)),
		},
		Length_: node.Immediate[int64](4),
		Caching: node.CacheNoCache,
	}
	store.StoreNode(id, reg)

	addr, err := reg.Address(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(0x1100), addr)
}
