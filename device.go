package gencam

import "context"

// Device is the physical-transport contract register-backed nodes and the
// memory event handler read and write through. Its concrete implementation
// (a real USB3 Vision link, an emulator, a test double) is external to this
// module; only the contract lives here.
type Device interface {
	// Read fills buf from address. Implementations should respect ctx
	// cancellation/deadline and return a timeout as a context error.
	Read(ctx context.Context, address int64, buf []byte) error

	// Write writes data to address.
	Write(ctx context.Context, address int64, data []byte) error

	// TimestampNs returns the device's current clock, in nanoseconds.
	TimestampNs(ctx context.Context) (uint64, error)
}
