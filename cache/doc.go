// Package cache implements the two-level device-read cache: a Store maps a
// node id and (address, length) pair to the bytes last read from or written
// to the device there, plus an invalidator dependency map recording which
// nodes' caches a write to a given node must clear. A Sink variant retains
// nothing, for callers that want a device read on every access.
package cache
