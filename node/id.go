package node

import "github.com/gencore/gencam"

// ID is a dense, interned handle over a node's unique name, identical in
// spirit to value.ID but living in its own namespace.
type ID uint32

// Store owns the bidirectional name<->ID interning table and the id->Data
// slots built by it.
type Store interface {
	// GetOrIntern returns name's existing ID, or interns a fresh one.
	GetOrIntern(name string) ID

	// IDByName looks up an already-interned name.
	IDByName(name string) (ID, bool)

	// NameByID reverses GetOrIntern.
	NameByID(id ID) (string, bool)

	// StoreNode records data at id. Panics if id already holds data: a
	// double-store is always a builder bug, never a runtime condition a
	// caller can recover from.
	StoreNode(id ID, data Data)

	// Node returns the data stored at id, or ok=false if id was interned
	// but never given data (or never interned at all).
	Node(id ID) (Data, bool)

	// VisitNodes calls fn once per stored node, in ascending ID order.
	VisitNodes(fn func(ID, Data))

	// FreshID allocates an ID with no backing name, for builder-synthesized
	// sub-identities (e.g. an inline IntSwissKnife address term lifted out
	// of a register's address stack).
	FreshID() ID
}

// DefaultStore is the in-memory Store implementation: a string-interning
// table plus a parallel Data slice, exactly mirroring DefaultNodeStore.
type DefaultStore struct {
	byName map[string]ID
	names  []string
	data   []Data
}

// NewDefaultStore constructs an empty DefaultStore.
func NewDefaultStore() *DefaultStore {
	return &DefaultStore{byName: make(map[string]ID)}
}

func (s *DefaultStore) intern(name string) ID {
	id := ID(len(s.names))
	s.byName[name] = id
	s.names = append(s.names, name)
	s.data = append(s.data, nil)
	return id
}

// GetOrIntern returns name's ID, interning it if this is the first mention.
func (s *DefaultStore) GetOrIntern(name string) ID {
	if id, ok := s.byName[name]; ok {
		return id
	}
	return s.intern(name)
}

// IDByName looks up an interned name without creating one.
func (s *DefaultStore) IDByName(name string) (ID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// NameByID reverses GetOrIntern.
func (s *DefaultStore) NameByID(id ID) (string, bool) {
	if int(id) >= len(s.names) {
		return "", false
	}
	return s.names[id], true
}

// StoreNode records data at id.
func (s *DefaultStore) StoreNode(id ID, data Data) {
	if int(id) >= len(s.data) {
		panic("node: StoreNode on an id never interned")
	}
	if s.data[id] != nil {
		panic("node: StoreNode called twice for id " + s.names[id])
	}
	s.data[id] = data
}

// Node returns the data stored at id.
func (s *DefaultStore) Node(id ID) (Data, bool) {
	if int(id) >= len(s.data) || s.data[id] == nil {
		return nil, false
	}
	return s.data[id], true
}

// VisitNodes calls fn once per node that has been given data, in ascending
// ID order.
func (s *DefaultStore) VisitNodes(fn func(ID, Data)) {
	for i, d := range s.data {
		if d != nil {
			fn(ID(i), d)
		}
	}
}

// FreshID allocates an unnamed ID.
func (s *DefaultStore) FreshID() ID {
	id := ID(len(s.names))
	s.names = append(s.names, "")
	s.data = append(s.data, nil)
	return id
}

// ExpectNode returns the data at id or a *gencam.Error{Kind: InvalidNode}.
func ExpectNode(store Store, id ID) (Data, error) {
	d, ok := store.Node(id)
	if !ok {
		return nil, gencam.NewError(gencam.KindInvalidNode, "node has no data")
	}
	return d, nil
}
