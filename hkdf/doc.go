// Package hkdf implements the HMAC-based Extract-and-Expand Key
// Derivation Function from RFC 5869, together with per-operation
// compliance reporting.
//
// The three entry points mirror the RFC:
//
//   - [Extract] condenses input keying material and an optional salt
//     into a pseudorandom key (PRK) of exactly one digest length.
//   - [Expand] stretches a PRK into up to 255 digest lengths of output
//     keying material bound to a context string.
//   - [Derive] (and the allocating [Key]) composes the two.
//
// Every operation accepts a [fips.Indicator]. Composed operations
// suppress the indicator across their internal primitive calls and
// record exactly one verdict for the operation as a whole, so a caller
// asking "was my last derivation approved?" never observes the verdict
// of an internal HMAC block. Pass a nil indicator to skip compliance
// tracking entirely.
//
//	ind := fips.New(nil)
//	okm, err := hkdf.Key(ind, digest.SHA256, secret, salt, info, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ind.Status() == fips.StatusApproved {
//	    // configuration is inside the approved set
//	}
//
// Sensitive intermediates (the PRK and the block chain state) are
// zeroized on every exit path. On failure no partial output survives
// in the caller's buffer.
package hkdf
