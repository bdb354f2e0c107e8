// Package ctxt bundles the value.Store and cache.Store a single logical
// read/write call threads through the node graph: one mutable cursor per
// call, never shared across goroutines.
//
// Ctxt is generic over the node-id type (see cache.Store's own doc comment
// for why) so this package never needs to import node; node instantiates
// Ctxt[node.ID].
package ctxt
