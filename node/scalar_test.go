package node_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gencore/gencam"
	"github.com/gencore/gencam/node"
)

func TestIntegerLiteralValue(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("Width")
	n := &node.Integer{
		Base:       node.Base{ID: id, Name: "Width"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(640)),
		Min_:       node.Immediate[int64](0),
		Max_:       node.Immediate[int64](1920),
	}
	store.StoreNode(id, n)

	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(640), v)

	_, err = n.Min(context.Background(), dev, store, cx)
	require.NoError(t, err)

	// A literal ValueKind is never writable.
	err = n.SetValue(context.Background(), 800, dev, store, cx)
	require.Error(t, err)
	require.True(t, gencam.Is(err, gencam.KindNotWritable))
}

func TestIntegerPValueFanOutToCopies(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	backingID := intRegAt(store, "Backing", 0)
	copyID := intRegAt(store, "Copy", 8)
	frontID := store.GetOrIntern("Front")

	front := &node.Integer{
		Base:       node.Base{ID: frontID, Name: "Front"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKindPValue[int64](backingID, copyID),
	}
	store.StoreNode(frontID, front)

	require.NoError(t, front.SetValue(context.Background(), 42, dev, store, cx))

	backing, err := node.ExpectIIntegerKind(backingID, store)
	require.NoError(t, err)
	bv, err := backing.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(42), bv)

	cp, err := node.ExpectIIntegerKind(copyID, store)
	require.NoError(t, err)
	cv, err := cp.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(42), cv, "writing through PValue must fan out to every Copies target")
}

func TestIntegerPIndexSelectsRowOrDefault(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	selectorID := store.GetOrIntern("Selector")
	store.StoreNode(selectorID, &node.Integer{
		Base:       node.Base{ID: selectorID, Name: "Selector"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(1)),
	})

	id := store.GetOrIntern("Indexed")
	n := &node.Integer{
		Base: node.Base{ID: id, Name: "Indexed"},
		Elem: readableElem(),
		ValueKind_: node.NewValueKindPIndex(node.PIndex[int64]{
			Index: node.PNode[int64](selectorID),
			Indexed: []node.ValueIndexed[int64]{
				{Index: 0, Indexed: node.Immediate[int64](100)},
				{Index: 1, Indexed: node.Immediate[int64](200)},
			},
			Default: node.Immediate[int64](-1),
		}),
	}
	store.StoreNode(id, n)

	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(200), v, "selector currently reads 1, so row 1 must be chosen")
}

func TestIntegerInc(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("Gain")
	n := &node.Integer{
		Base:       node.Base{ID: id, Name: "Gain"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(4)),
		Inc_:       node.Immediate[int64](2),
		HasInc:     true,
	}
	store.StoreNode(id, n)

	inc, has, err := n.Inc(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, int64(2), inc)
}

func TestFloatValueAndBounds(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("ExposureTime")
	n := &node.Float{
		Base:       node.Base{ID: id, Name: "ExposureTime"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(1000.0),
		Min_:       node.Immediate(10.0),
		Max_:       node.Immediate(1000000.0),
	}
	store.StoreNode(id, n)

	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, 1000.0, v)

	min, err := n.Min(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, 10.0, min)
}

func TestBooleanLiteralAndGate(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("AcquisitionActive")
	n := &node.Boolean{
		Base:       node.Base{ID: id, Name: "AcquisitionActive"},
		Elem:       node.ElementBase{IsImplemented: true, IsAvailable: true, ImposedAccess: node.AccessRO},
		ValueKind_: node.NewValueKind(true),
	}
	store.StoreNode(id, n)

	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.True(t, v)

	ok, err := n.IsWritable(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.False(t, ok, "ImposedAccess is read-only")
}

func TestStringMaxLengthAndValue(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	id := store.GetOrIntern("DeviceVendorName")
	n := &node.String{
		Base:       node.Base{ID: id, Name: "DeviceVendorName"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind("Acme"),
		MaxLength_: 64,
	}
	store.StoreNode(id, n)

	v, err := n.Value(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, "Acme", v)

	ml, err := n.MaxLength(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, int64(64), ml)
}

func TestCommandExecuteAndIsDone(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	targetID := intRegAt(store, "TriggerSoftwareTarget", 0)

	cmdID := store.GetOrIntern("TriggerSoftware")
	cmd := &node.Command{
		Base:         node.Base{ID: cmdID, Name: "TriggerSoftware"},
		Elem:         readableElem(),
		ValueKind_:   node.NewValueKindPValue[int64](targetID),
		CommandValue: 1,
	}
	store.StoreNode(cmdID, cmd)

	require.NoError(t, cmd.Execute(context.Background(), dev, store, cx))

	done, err := cmd.IsDone(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.False(t, done, "target still reads back CommandValue, so the command is not yet done")
}

func TestCategoryChildren(t *testing.T) {
	store := node.NewDefaultStore()

	childID := store.GetOrIntern("Child")
	id := store.GetOrIntern("AcquisitionControl")
	cat := &node.Category{
		Base:      node.Base{ID: id, Name: "AcquisitionControl"},
		Children_: []node.ID{childID},
	}
	store.StoreNode(id, cat)

	require.Equal(t, []node.ID{childID}, cat.Children())
	require.False(t, cat.Streamable())
}

func TestEnumerationCurrentEntryAndSetters(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	enumID := store.GetOrIntern("PixelFormat")
	monoID := store.GetOrIntern("Mono8")
	rgbID := store.GetOrIntern("RGB8")
	store.StoreNode(monoID, &node.EnumEntry{Base: node.Base{ID: monoID, Name: "Mono8"}, Value: 0, Symbolic: "Mono8"})
	store.StoreNode(rgbID, &node.EnumEntry{Base: node.Base{ID: rgbID, Name: "RGB8"}, Value: 1, Symbolic: "RGB8"})

	enum := &node.Enumeration{
		Base:       node.Base{ID: enumID, Name: "PixelFormat"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKind(int64(0)),
		Entries_:   []node.ID{monoID, rgbID},
	}
	store.StoreNode(enumID, enum)

	entry, err := enum.CurrentEntry(context.Background(), dev, store, cx)
	require.NoError(t, err)
	require.Equal(t, monoID, entry)

	err = enum.SetEntryByValue(context.Background(), 7, dev, store, cx)
	require.Error(t, err)
	require.True(t, gencam.Is(err, gencam.KindInvalidData))

	err = enum.SetEntryBySymbolic(context.Background(), "Nonexistent", dev, store, cx)
	require.Error(t, err)
}

// TestEnumerationSymbolicClosure drives the symbolic round trip through a
// writable register-backed enumeration: after SetEntryBySymbolic(name),
// CurrentEntry must resolve back to the entry carrying that symbolic.
func TestEnumerationSymbolicClosure(t *testing.T) {
	store := node.NewDefaultStore()
	dev := newFakeDevice()
	cx := newCtx()

	backingID := intRegAt(store, "PixelFormatReg", 0)

	enumID := store.GetOrIntern("PixelFormat")
	monoID := store.GetOrIntern("Mono8")
	rgbID := store.GetOrIntern("RGB8")
	store.StoreNode(monoID, &node.EnumEntry{Base: node.Base{ID: monoID, Name: "Mono8"}, Value: 0, Symbolic: "Mono8"})
	store.StoreNode(rgbID, &node.EnumEntry{Base: node.Base{ID: rgbID, Name: "RGB8"}, Value: 1, Symbolic: "RGB8"})

	enum := &node.Enumeration{
		Base:       node.Base{ID: enumID, Name: "PixelFormat"},
		Elem:       readableElem(),
		ValueKind_: node.NewValueKindPValue[int64](backingID),
		Entries_:   []node.ID{monoID, rgbID},
	}
	store.StoreNode(enumID, enum)

	require.NoError(t, enum.SetEntryBySymbolic(context.Background(), "RGB8", dev, store, cx))

	entryID, err := enum.CurrentEntry(context.Background(), dev, store, cx)
	require.NoError(t, err)
	d, ok := store.Node(entryID)
	require.True(t, ok)
	require.Equal(t, "RGB8", d.(*node.EnumEntry).SymbolicName())
}

func TestIntegerIncMode(t *testing.T) {
	none := &node.Integer{}
	require.Equal(t, node.IncNone, none.IncMode())

	fixed := &node.Integer{Inc_: node.Immediate[int64](2), HasInc: true}
	require.Equal(t, node.IncFixed, fixed.IncMode())

	list := &node.Integer{ValidValueSet_: []int64{1, 2, 4, 8}}
	require.Equal(t, node.IncList, list.IncMode())
	require.Equal(t, []int64{1, 2, 4, 8}, list.ValidValueSet())
}
