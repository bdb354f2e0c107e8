package node_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gencore/gencam/cache"
	"github.com/gencore/gencam/codec"
	"github.com/gencore/gencam/formula"
	"github.com/gencore/gencam/node"
	"github.com/gencore/gencam/value"
)

// fakeDevice is a minimal in-memory gencam.Device backing the
// register-addressed tests below.
type fakeDevice struct {
	mu       sync.Mutex
	mem      map[int64][]byte
	clockNs  uint64
	readErr  error
	writeErr error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{mem: make(map[int64][]byte)}
}

func (d *fakeDevice) Read(ctx context.Context, address int64, buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readErr != nil {
		return d.readErr
	}
	copy(buf, d.mem[address])
	return nil
}

func (d *fakeDevice) Write(ctx context.Context, address int64, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.writeErr != nil {
		return d.writeErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	d.mem[address] = cp
	return nil
}

func (d *fakeDevice) TimestampNs(ctx context.Context) (uint64, error) {
	return d.clockNs, nil
}

func newCtx() *node.Ctxt {
	return node.NewCtxt(value.NewArenaStore(), cache.NewMapStore[node.ID]())
}

// readableElem returns an ElementBase that gates readable/writable true,
// for fixtures that aren't exercising the access-gating behavior itself.
func readableElem() node.ElementBase {
	return node.ElementBase{
		IsImplemented: true,
		IsAvailable:   true,
		ImposedAccess: node.AccessRW,
	}
}

// intRegAt interns name and stores an 8-byte little-endian unsigned IntReg
// at addr, with caching disabled and the element gate wide open.
func intRegAt(store *node.DefaultStore, name string, addr int64) node.ID {
	id := store.GetOrIntern(name)
	store.StoreNode(id, &node.IntReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: name},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](addr))},
			Length_:  node.Immediate[int64](8),
			Caching:  node.CacheNoCache,
		},
		Sign:       codec.Unsigned,
		Endianness: codec.LittleEndian,
	})
	return id
}

// floatRegAt interns name and stores an 8-byte little-endian FloatReg at
// addr, with caching disabled and the element gate wide open.
func floatRegAt(store *node.DefaultStore, name string, addr int64, min, max float64) node.ID {
	id := store.GetOrIntern(name)
	store.StoreNode(id, &node.FloatReg{
		Reg: node.Register{
			Base:     node.Base{ID: id, Name: name},
			Elem:     readableElem(),
			Address_: []node.AddressKind{node.NewAddress(node.Immediate[int64](addr))},
			Length_:  node.Immediate[int64](8),
			Caching:  node.CacheNoCache,
		},
		Endianness: codec.LittleEndian,
		Min_:       node.Immediate(min),
		Max_:       node.Immediate(max),
	})
	return id
}

// parseFormula parses src, failing the test immediately on a syntax error.
func parseFormula(t *testing.T, src string) (formula.Expr, error) {
	t.Helper()
	expr, err := formula.Parse(src)
	require.NoError(t, err)
	return expr, nil
}
