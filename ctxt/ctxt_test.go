package ctxt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gencore/gencam/cache"
	"github.com/gencore/gencam/ctxt"
	"github.com/gencore/gencam/value"
)

func TestCtxtInvalidateCacheBy(t *testing.T) {
	values := value.NewArenaStore()
	caches := cache.NewMapStore[int]()
	caches.StoreInvalidator(1, 2)
	caches.Cache(2, 0, 1, []byte{0xAA})

	cx := ctxt.New[int](values, caches)
	cx.InvalidateCacheBy(1)

	_, ok := caches.GetCache(2, 0, 1)
	assert.False(t, ok)
}

func TestCtxtInvalidateCacheOf(t *testing.T) {
	values := value.NewArenaStore()
	caches := cache.NewMapStore[int]()
	caches.Cache(5, 0, 1, []byte{1})

	cx := ctxt.New[int](values, caches)
	cx.InvalidateCacheOf(5)

	_, ok := caches.GetCache(5, 0, 1)
	assert.False(t, ok)
}

func TestCtxtValuesPassthrough(t *testing.T) {
	values := value.NewArenaStore()
	id := values.Store(value.Integer(42))
	caches := cache.NewMapStore[int]()

	cx := ctxt.New[int](values, caches)
	got, ok := cx.Values().IntegerValue(id.AsInteger())
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
}
