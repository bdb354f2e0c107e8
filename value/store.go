package value

import (
	"fmt"
	"math"
)

// Store is the primitive value arena capability methods read and write
// through. Implementations are not required to be safe for concurrent use;
// the caller owning the surrounding Ctxt serializes access.
type Store interface {
	// Store appends v and returns its freshly allocated id.
	Store(v Data) ID

	// ValueOpt returns the value at id, or ok=false if id is out of range.
	ValueOpt(id ID) (Data, bool)

	// Update replaces the value at id, returning the prior value. ok is
	// false if id is out of range.
	Update(id ID, v Data) (Data, bool)

	// IntegerValue returns the integer arm at id, or ok=false if id is out
	// of range or does not hold an integer.
	IntegerValue(id IntegerID) (int64, bool)

	// FloatValue returns the float arm at id, or ok=false if id is out of
	// range or does not hold a float.
	FloatValue(id FloatID) (float64, bool)

	// StrValue returns the string arm at id, or ok=false if id is out of
	// range or does not hold a string.
	StrValue(id StringID) (string, bool)
}

// ArenaStore is the default append-only Store implementation: a flat slice
// of Data, grown on every Store call.
type ArenaStore struct {
	values []Data
}

// NewArenaStore constructs an empty ArenaStore.
func NewArenaStore() *ArenaStore {
	return &ArenaStore{}
}

// Store appends v, returning the prior length cast to a 32-bit id.
//
// Panics if the store already holds math.MaxUint32 values; id space
// exhaustion is unrecoverable.
func (s *ArenaStore) Store(v Data) ID {
	if len(s.values) >= math.MaxUint32 {
		panic(fmt.Sprintf("value: store exceeds %d entries", uint32(math.MaxUint32)))
	}
	id := ID(len(s.values))
	s.values = append(s.values, v)
	return id
}

// ValueOpt is a bounds-checked lookup.
func (s *ArenaStore) ValueOpt(id ID) (Data, bool) {
	if int(id) >= len(s.values) {
		return Data{}, false
	}
	return s.values[id], true
}

// Update replaces the value at id in place, returning the prior value.
func (s *ArenaStore) Update(id ID, v Data) (Data, bool) {
	if int(id) >= len(s.values) {
		return Data{}, false
	}
	prev := s.values[id]
	s.values[id] = v
	return prev, true
}

// IntegerValue returns the integer arm at id.
func (s *ArenaStore) IntegerValue(id IntegerID) (int64, bool) {
	v, ok := s.ValueOpt(id.AsID())
	if !ok {
		return 0, false
	}
	return v.Integer()
}

// FloatValue returns the float arm at id.
func (s *ArenaStore) FloatValue(id FloatID) (float64, bool) {
	v, ok := s.ValueOpt(id.AsID())
	if !ok {
		return 0, false
	}
	return v.Float()
}

// StrValue returns the string arm at id.
func (s *ArenaStore) StrValue(id StringID) (string, bool) {
	v, ok := s.ValueOpt(id.AsID())
	if !ok {
		return "", false
	}
	return v.Str()
}

// Len reports how many values have been stored.
func (s *ArenaStore) Len() int { return len(s.values) }
