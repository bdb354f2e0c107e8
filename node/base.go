package node

// Namespace classifies a node's origin: vendor-custom, the GenICam
// Standard Features Naming Convention, or one of the transport-standard
// namespaces (IIDC/1394, GigE Vision, Camera Link, USB3 Vision).
type Namespace int

const (
	NamespaceCustom Namespace = iota
	NamespaceStandard
	NamespaceIIDC
	NamespaceGEV
	NamespaceCL
	NamespaceUSB
	NamespaceNone
)

// Visibility is GenApi's UI-exposure hint (Beginner/Expert/Guru/Invisible).
type Visibility int

const (
	VisibilityBeginner Visibility = iota
	VisibilityExpert
	VisibilityGuru
	VisibilityInvisible
)

// AccessMode is the read/write posture a node resolves to once its own
// ImposedAccessMode and its PValue/Copies dependency chain are composed.
type AccessMode int

const (
	AccessNI AccessMode = iota // not implemented
	AccessRO
	AccessWO
	AccessRW
)

// Readable reports whether a reads through m.
func (m AccessMode) Readable() bool { return m == AccessRO || m == AccessRW }

// Writable reports whether a write passes through m.
func (m AccessMode) Writable() bool { return m == AccessWO || m == AccessRW }

// Compose combines this node's own access mode with a dependency's,
// narrowing to the more restrictive of the two: a composite node is only
// readable/writable if both its element access and every value-source
// target's access allow it.
func (m AccessMode) Compose(other AccessMode) AccessMode {
	r := m.Readable() && other.Readable()
	w := m.Writable() && other.Writable()
	switch {
	case r && w:
		return AccessRW
	case r:
		return AccessRO
	case w:
		return AccessWO
	default:
		return AccessNI
	}
}

// Base carries the attributes every node has regardless of capability:
// identity, namespace, visibility, and the display hints a GUI would
// consume.
type Base struct {
	ID          ID
	Name        string
	Namespace   Namespace
	Visibility  Visibility
	DisplayName string
	ToolTip     string
	Description string
}

// ElementBase carries the availability/locking/invalidation plumbing every
// node shares. The PIs* fields override the corresponding plain bool when
// HasPIs* is set; otherwise the plain bool is authoritative.
type ElementBase struct {
	IsImplemented  bool
	IsAvailable    bool
	IsLocked       bool
	PIsImplemented ID
	HasPIsImpl     bool
	PIsAvailable   ID
	HasPIsAvail    bool
	PIsLocked      ID
	HasPIsLocked   bool
	PBlockedBy     []ID
	PErrors        []ID
	PAlias         ID
	HasAlias       bool
	PCastAlias     ID
	HasCastAlias   bool
	EventID        ID
	HasEventID     bool
	PInvalidators  []ID
	ImposedAccess  AccessMode
}
