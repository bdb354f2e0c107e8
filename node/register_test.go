package node_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/cache"
	"github.com/gencore/gencam/codec"
	"github.com/gencore/gencam/node"
	"github.com/gencore/gencam/value"
)

func TestRegisterGetSetRoundTrip(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("FirmwareBlock")
	reg := &node.Register{
		Base:     node.Base{ID: id, Name: "FirmwareBlock"},
		Elem:     readableElem(),
		Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](100))},
		Length_:  node.Immediate[int64](4),
		Caching:  node.CacheWriteThrough,
	}
	store.StoreNode(id, reg)

	require.NoError(t, reg.Set(context.Background(), []byte{1, 2, 3, 4}, dev, store, cx))
	got, err := reg.Get(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestRegisterSetRejectsLengthMismatch(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("FirmwareBlock")
	reg := &node.Register{
		Base:     node.Base{ID: id, Name: "FirmwareBlock"},
		Elem:     readableElem(),
		Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
		Length_:  node.Immediate[int64](4),
		Caching:  node.CacheWriteThrough,
	}
	store.StoreNode(id, reg)

	err := reg.Set(context.Background(), []byte{1, 2}, dev, store, cx)
	require.Error(t, err)
	require.True(t, gencam.Is(err, gencam.KindInvalidBuffer))
}

func TestRegisterIOErrorWrapsWithNodeName(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()
	dev.readErr = errors.New("link down")

	id := store.GetOrIntern("ABRM::GenCpVersion")
	reg := &node.Register{
		Base:     node.Base{ID: id, Name: "ABRM::GenCpVersion"},
		Elem:     readableElem(),
		Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
		Length_:  node.Immediate[int64](4),
		Caching:  node.CacheNoCache,
	}
	store.StoreNode(id, reg)

	_, err := reg.Get(context.Background(), dev, store, cx)
	require.Error(t, err)
	require.True(t, gencam.Is(err, gencam.KindIo))
	var gerr *gencam.Error
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, "ABRM::GenCpVersion", gerr.Node)
	require.ErrorIs(t, err, dev.readErr)
}

func TestRegisterWriteAroundInvalidatesRatherThanRefreshes(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	values := value.NewArenaStore()
	caches := cache.NewMapStore[node.ID]()
	cx := node.NewCtxt(values, caches)

	id := store.GetOrIntern("StreamChannelPort")
	reg := &node.Register{
		Base:     node.Base{ID: id, Name: "StreamChannelPort"},
		Elem:     readableElem(),
		Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
		Length_:  node.Immediate[int64](2),
		Caching:  node.CacheWriteAround,
	}
	store.StoreNode(id, reg)

	_, err := reg.Get(context.Background(), dev, store, cx)
	require.NoError(t, err)
	_, ok := caches.GetCache(id, 0, 2)
	require.True(t, ok, "a prior read should have populated the cache")

	require.NoError(t, reg.Set(context.Background(), []byte{9, 9}, dev, store, cx))
	_, ok = caches.GetCache(id, 0, 2)
	require.False(t, ok, "write-around must invalidate rather than refresh the cache entry")
}

func TestRegisterNoCacheNeverConsultsCache(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	caches := cache.NewMapStore[node.ID]()
	cx := node.NewCtxt(value.NewArenaStore(), caches)

	id := store.GetOrIntern("Scratch")
	reg := &node.Register{
		Base:     node.Base{ID: id, Name: "Scratch"},
		Elem:     readableElem(),
		Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
		Length_:  node.Immediate[int64](1),
		Caching:  node.CacheNoCache,
	}
	store.StoreNode(id, reg)

	require.NoError(t, reg.Set(context.Background(), []byte{5}, dev, store, cx))
	_, ok := caches.GetCache(id, 0, 1)
	require.False(t, ok)

	dev.mem[0] = []byte{7}
	got, err := reg.Get(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, []byte{7}, got, "NoCache must re-read the device rather than serve a stale cached value")
}

func TestIntRegValueAndSetValue(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := intRegAt(store, "GevSCPSPacketSize", 0)
	n, err := node.ExpectIIntegerKind(id, store)
	require.NoError(t, err)

	require.NoError(t, n.SetValue(context.Background(), 1500, dev, store, cx))
	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(1500), v)
}

func TestMaskedIntRegExtractsAndPacksBits(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	b, _ := codec.BytesFromInt(0, 8, codec.LittleEndian, codec.Unsigned)
	dev.mem[0] = b

	id := store.GetOrIntern("DeviceModeBits")
	n := &node.MaskedIntReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: "DeviceModeBits"},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
			Length_:  node.Immediate[int64](8),
			Caching:  node.CacheNoCache,
		},
		Mask:       node.BitRange(4, 7),
		Sign:       codec.Unsigned,
		Endianness: codec.LittleEndian,
	}
	store.StoreNode(id, n)

	require.NoError(t, n.SetValue(context.Background(), 0xA, dev, store, cx))
	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(0xA), v)

	raw, err := codec.IntFromSlice(dev.mem[0], codec.LittleEndian, codec.Unsigned)
	require.NoError(t, err)
	require.Equal(t, int64(0xA0), raw, "packed bits must land at bit offset 4, leaving the rest of the word zero")
}

func TestBitMaskSingleBit(t *testing.T) {
	m := node.SingleBit(3)
	require.Equal(t, int64(1), m.Extract(0b1000))
	require.Equal(t, int64(0b1000), m.Pack(0, 1))
}

func TestFloatRegValueAndSetValue(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("BlackLevel")
	n := &node.FloatReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: "BlackLevel"},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
			Length_:  node.Immediate[int64](8),
			Caching:  node.CacheNoCache,
		},
		Endianness: codec.LittleEndian,
	}
	store.StoreNode(id, n)

	require.NoError(t, n.SetValue(context.Background(), 12.5, dev, store, cx))
	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, 12.5, v)
}

func TestStringRegNFCNormalizesAndNulTerminates(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("DeviceUserID")
	n := &node.StringReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: "DeviceUserID"},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
			Length_:  node.Immediate[int64](16),
			Caching:  node.CacheNoCache,
		},
	}
	store.StoreNode(id, n)

	require.NoError(t, n.SetValue(context.Background(), "café", dev, store, cx))
	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, "café", v)
}

func TestStringRegRejectsOverlongValue(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("DeviceUserID")
	n := &node.StringReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: "DeviceUserID"},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](0))},
			Length_:  node.Immediate[int64](4),
			Caching:  node.CacheNoCache,
		},
	}
	store.StoreNode(id, n)

	err := n.SetValue(context.Background(), "toolong", dev, store, cx)
	require.Error(t, err)
	require.True(t, gencam.Is(err, gencam.KindInvalidData))
}
