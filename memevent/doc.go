// Package memevent is the asynchronous register-memory event handler: a
// bounded MPSC channel fed by per-register write observers, drained by a
// single worker that reacts to ABRM::TimestampLatch and SIRM::Control
// writes. Timestamp latching refreshes ABRM::Timestamp and signals the
// event module; stream-interface control validates SIRM alignment and
// sizing before signalling the stream module to start or stop.
package memevent
