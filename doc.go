// Package gencam implements the core of a GenICam-style camera control
// runtime: a typed, polymorphic node graph modelling a device's feature set,
// the value/cache substrate backing it, and the asynchronous register-memory
// event handler that mediates side effects of writes to well-known control
// registers.
//
// # Layout
//
// The node graph lives in [github.com/gencore/gencam/node]; the primitive
// value arena in [github.com/gencore/gencam/value]; the device-read cache in
// [github.com/gencore/gencam/cache]; binary marshalling in
// [github.com/gencore/gencam/codec]; the swiss-knife/converter expression
// evaluator in [github.com/gencore/gencam/formula]; the per-call cursor
// bundling a value store and cache store in
// [github.com/gencore/gencam/ctxt]; and the bounded async observer pipeline
// for ABRM/SIRM register writes in [github.com/gencore/gencam/memevent].
//
// This package itself holds only what every other package needs: the
// [Device] contract nodes read and write through, and the shared [Error]
// taxonomy.
//
// Out of scope: the XML graph builder that populates the node/value/cache
// stores, the physical transport behind [Device], and any CLI or
// configuration loading around this core.
package gencam
