// Package codec implements the pure binary marshalling functions that
// convert between i64/f64 and the byte ranges register-backed nodes read
// from and write to a Device, under a configurable endianness and
// signedness.
//
// Built on encoding/binary, which is already compiler-optimized well enough
// that a hand-rolled or unsafe-pointer implementation buys nothing; this
// package only adds the (width, endianness, signedness) parametrization and
// the sign/zero-extension rules register decoding needs.
package codec
