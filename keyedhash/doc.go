// Package keyedhash provides the keyed-hash (HMAC) primitive consumed
// by the key derivation engine.
//
// The [Provider] interface is the seam between the engine and the
// primitive: the default [HMAC] provider computes RFC 2104 HMAC over a
// digest descriptor, and tests substitute failing providers to exercise
// the engine's abort paths.
//
// A standalone call through [Sum] records its own compliance verdict;
// when the call happens inside a composed operation the indicator is
// suppressed and the write is discarded.
package keyedhash
