package cache

// Key identifies one cached byte range within a node's cache bucket: the
// device address and length a register read/write targeted.
type Key struct {
	Address int64
	Length  int64
}

// Store is the device-read cache: a two-level map from a node id to
// (address, length) to the bytes last read from or written to the device
// there, plus an invalidator dependency graph.
//
// Parameterized over the node-id type K so this package never needs to
// import the node package that in turn needs a Store to back its register
// variants' Get/Set methods.
type Store[K comparable] interface {
	// Cache records data for nid at the given address/length, replacing
	// any prior entry for the same (address, length).
	Cache(nid K, address, length int64, data []byte)

	// GetCache returns the cached bytes for nid at (address, length), or
	// ok=false if absent.
	GetCache(nid K, address, length int64) (data []byte, ok bool)

	// InvalidateOf clears every cache entry belonging to nid itself.
	InvalidateOf(nid K)

	// InvalidateBy clears the cache of every node registered as depending
	// on nid (i.e. every node for which nid is a p_invalidator).
	InvalidateBy(nid K)

	// Clear wipes every entry for every node.
	Clear()
}

// Builder is implemented by Store implementations that support recording
// invalidator relationships at graph-build time. The external XML builder
// (out of scope) calls StoreInvalidator once per (invalidator, target) pair
// it discovers while wiring p_invalidators.
type Builder[K comparable] interface {
	Store[K]

	// StoreInvalidator records that a write to invalidator must clear
	// target's cache.
	StoreInvalidator(invalidator, target K)
}

// MapStore is the default active Store: an in-memory two-level map.
type MapStore[K comparable] struct {
	entries      map[K]map[Key][]byte
	invalidators map[K][]K
}

// NewMapStore constructs an empty MapStore.
func NewMapStore[K comparable]() *MapStore[K] {
	return &MapStore[K]{
		entries:      make(map[K]map[Key][]byte),
		invalidators: make(map[K][]K),
	}
}

// StoreInvalidator records that a write to invalidator must clear target's
// cache.
func (s *MapStore[K]) StoreInvalidator(invalidator, target K) {
	s.invalidators[invalidator] = append(s.invalidators[invalidator], target)
}

// Cache records data for nid at (address, length).
func (s *MapStore[K]) Cache(nid K, address, length int64, data []byte) {
	bucket, ok := s.entries[nid]
	if !ok {
		bucket = make(map[Key][]byte)
		s.entries[nid] = bucket
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	bucket[Key{Address: address, Length: length}] = cp
}

// GetCache returns the cached bytes for nid at (address, length).
func (s *MapStore[K]) GetCache(nid K, address, length int64) ([]byte, bool) {
	bucket, ok := s.entries[nid]
	if !ok {
		return nil, false
	}
	data, ok := bucket[Key{Address: address, Length: length}]
	return data, ok
}

// InvalidateOf clears every cache entry belonging to nid.
func (s *MapStore[K]) InvalidateOf(nid K) {
	if _, ok := s.entries[nid]; ok {
		s.entries[nid] = make(map[Key][]byte)
	}
}

// InvalidateBy clears the cache of every node that depends on nid.
func (s *MapStore[K]) InvalidateBy(nid K) {
	for _, target := range s.invalidators[nid] {
		if _, ok := s.entries[target]; ok {
			s.entries[target] = make(map[Key][]byte)
		}
	}
}

// Clear wipes every entry for every node.
func (s *MapStore[K]) Clear() {
	s.entries = make(map[K]map[Key][]byte)
}

// Sink is a cache that never retains anything: every mutator is a no-op and
// GetCache always misses. Binding it in a Ctxt turns caching off for every
// register; a register whose CachingMode is NoCache skips the cache on its
// own, whichever store is bound.
type Sink[K comparable] struct{}

// NewSink constructs a Sink.
func NewSink[K comparable]() Sink[K] { return Sink[K]{} }

func (Sink[K]) StoreInvalidator(_, _ K)                {}
func (Sink[K]) Cache(_ K, _, _ int64, _ []byte)         {}
func (Sink[K]) GetCache(_ K, _, _ int64) ([]byte, bool) { return nil, false }
func (Sink[K]) InvalidateOf(_ K)                        {}
func (Sink[K]) InvalidateBy(_ K)                        {}
func (Sink[K]) Clear()                                  {}

var (
	_ Builder[int] = (*MapStore[int])(nil)
	_ Builder[int] = Sink[int]{}
)
