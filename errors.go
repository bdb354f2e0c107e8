package gencam

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than
// matching error text.
type ErrKind int

const (
	// KindInvalidNode indicates a wrong capability, an unresolved id, or a
	// missing entry.
	KindInvalidNode ErrKind = iota
	// KindInvalidData indicates an out-of-range value, a non-existent enum
	// symbol/value, or a parse failure.
	KindInvalidData
	// KindInvalidBuffer indicates a codec width outside {1,2,4,8} for
	// integers or {4,8} for floats.
	KindInvalidBuffer
	// KindNotWritable indicates an access-mode violation on a write.
	KindNotWritable
	// KindNotReadable indicates an access-mode violation on a read.
	KindNotReadable
	// KindChunkDataMissing indicates a formula variable was unresolvable at
	// read time.
	KindChunkDataMissing
	// KindIo wraps a device transport error (timeout, disconnect, other).
	KindIo
	// KindInvalidSiState indicates a SIRM (streaming interface register map)
	// integrity check failed during stream-interface enable.
	KindInvalidSiState
)

// String renders the kind for diagnostics.
func (k ErrKind) String() string {
	switch k {
	case KindInvalidNode:
		return "invalid_node"
	case KindInvalidData:
		return "invalid_data"
	case KindInvalidBuffer:
		return "invalid_buffer"
	case KindNotWritable:
		return "not_writable"
	case KindNotReadable:
		return "not_readable"
	case KindChunkDataMissing:
		return "chunk_data_missing"
	case KindIo:
		return "io"
	case KindInvalidSiState:
		return "invalid_si_state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause and, where
// available, the name of the node a capability method failed against.
type Error struct {
	Kind ErrKind
	Msg  string
	Node string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Node != "" {
		msg = fmt.Sprintf("%s (node %q)", msg, e.Node)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// WithNode returns a copy of e annotated with the name of the node whose
// capability method produced it.
func (e *Error) WithNode(name string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Node = name
	return &cp
}

// NewError constructs an *Error of the given kind and message.
func NewError(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error of the given kind wrapping cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is an *Error of the given kind, unwrapping as
// needed.
func Is(err error, kind ErrKind) bool {
	var e *Error
	for err != nil {
		if ge, ok := err.(*Error); ok {
			e = ge
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}

// Sentinels for the common, argument-less cases.
var (
	// ErrNotPresent indicates a value/node id did not resolve.
	ErrNotPresent = NewError(KindInvalidNode, "not present")
	// ErrGenericDevice indicates a control register held a value its handler
	// does not accept (ABRM::TimestampLatch accepts only 1, SIRM::Control
	// only 0 or 1).
	ErrGenericDevice = NewError(KindInvalidData, "unexpected register control value")
)
