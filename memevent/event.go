package memevent

// Event identifies which register write triggered an observer notification.
type Event int

const (
	// EventTimestampLatch fires when ABRM::TimestampLatch is written.
	EventTimestampLatch Event = iota
	// EventSiControl fires when SIRM::Control is written.
	EventSiControl
)

func (e Event) String() string {
	switch e {
	case EventTimestampLatch:
		return "timestamp_latch"
	case EventSiControl:
		return "si_control"
	default:
		return "unknown"
	}
}

// EventSignalKind enumerates the signal variants emitted once a register
// event finishes processing.
type EventSignalKind int

const (
	// EventSignalUpdateTimestamp reports that ABRM::Timestamp was refreshed.
	EventSignalUpdateTimestamp EventSignalKind = iota
)

// EventSignal is emitted toward the caller-owned event module when a
// register write's side effect completes. Only UpdateTimestamp is defined;
// the collaborator that consumes it is out of scope for this package.
type EventSignal struct {
	Kind        EventSignalKind
	TimestampNs uint64
}

// StreamSignalKind enumerates the signal variants sent toward the
// caller-owned stream module.
type StreamSignalKind int

const (
	// StreamSignalEnable requests the streaming interface start.
	StreamSignalEnable StreamSignalKind = iota
	// StreamSignalDisable requests the streaming interface stop; Done is
	// closed once the stream module has finished tearing down.
	StreamSignalDisable
)

// StreamSignal is emitted toward the caller-owned stream module in response
// to SIRM::Control writes.
type StreamSignal struct {
	Kind StreamSignalKind
	Done chan<- struct{}
}
