package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencore/gencam/value"
)

func TestArenaStoreAppendOnly(t *testing.T) {
	s := value.NewArenaStore()

	id0 := s.Store(value.Integer(42))
	id1 := s.Store(value.Float(3.5))
	id2 := s.Store(value.Str("hello"))
	id3 := s.Store(value.Boolean(true))

	assert.Equal(t, value.ID(0), id0)
	assert.Equal(t, value.ID(1), id1)
	assert.Equal(t, value.ID(2), id2)
	assert.Equal(t, value.ID(3), id3)
	assert.Equal(t, 4, s.Len())

	v, ok := s.ValueOpt(id0)
	require.True(t, ok)
	i, ok := v.Integer()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)
}

func TestArenaStoreOutOfRange(t *testing.T) {
	s := value.NewArenaStore()
	s.Store(value.Integer(1))

	_, ok := s.ValueOpt(value.ID(5))
	assert.False(t, ok)

	_, ok = s.Update(value.ID(5), value.Integer(9))
	assert.False(t, ok)
}

func TestArenaStoreUpdateReturnsPrior(t *testing.T) {
	s := value.NewArenaStore()
	id := s.Store(value.Integer(1))

	prev, ok := s.Update(id, value.Integer(2))
	require.True(t, ok)
	i, ok := prev.Integer()
	require.True(t, ok)
	assert.Equal(t, int64(1), i)

	v, _ := s.ValueOpt(id)
	i, _ = v.Integer()
	assert.Equal(t, int64(2), i)
}

func TestTypedAccessorArmMismatch(t *testing.T) {
	s := value.NewArenaStore()
	id := s.Store(value.Str("not an integer"))

	_, ok := s.IntegerValue(value.ID(id).AsInteger())
	assert.False(t, ok, "integer accessor must report not-present on arm mismatch")

	str, ok := s.StrValue(value.ID(id).AsString())
	require.True(t, ok)
	assert.Equal(t, "not an integer", str)
}

func TestTypedAccessorOutOfRange(t *testing.T) {
	s := value.NewArenaStore()

	_, ok := s.FloatValue(value.FloatID(99))
	assert.False(t, ok)
}
