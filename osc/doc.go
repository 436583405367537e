// Package osc implements the Open Sound Control wire protocol: encoding, decoding, validating,
// dispatching, and transforming OSC packets.
//
// The package is split along the same lines as the C library it is modeled on: wire primitives
// (wire.go), a bounds-unchecked decode cursor and a bounded, sticky-error builder (cursor.go,
// writer.go), a structural validator for untrusted input (validate.go), a bundle-unrolling
// transformer (unroll.go), and a pattern-driven method dispatcher (dispatch.go).
//
// Decoding never copies payload data: strings, blobs, and symbols returned from a Cursor are views
// into the input buffer and must not outlive it (MIDI packets are returned as 4-byte array copies).
// Decoding also never bounds-checks; run
// CheckPacket over untrusted input first, or CheckPacketErr if the caller wants to know why a
// malformed packet was rejected.
//
// Building requires a caller-provided, fixed-size destination buffer. A Writer is a sticky-error
// cursor: once a bounded write would overflow, every subsequent call becomes a no-op and Ok
// reports false.
package osc
