package hkdf

import "errors"

var (
	// ErrOutputTooLarge is returned when the requested output length
	// needs more than 255 blocks of the chosen digest, or when the
	// length arithmetic would overflow. It is raised before any
	// keyed-hash work is performed.
	ErrOutputTooLarge = errors.New("hkdf: output key material too large")

	// ErrPrimitiveFailure is returned when the underlying keyed-hash
	// computation fails. The operation aborts immediately and no
	// partial output is left in caller-visible buffers.
	ErrPrimitiveFailure = errors.New("hkdf: keyed-hash primitive failed")
)
