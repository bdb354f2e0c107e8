// Package value implements the primitive value arena: an append-only store
// of i64/f64/string/bool values addressed by typed opaque ids. Typed
// accessors report a clean "not present" on arm mismatch rather than
// panicking or returning a zero value a caller could mistake for data.
package value
