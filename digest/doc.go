// Package digest describes the hash algorithms available to the key
// derivation engine.
//
// An [Algorithm] bundles a stable name, a fixed output size, and a
// constructor for the underlying hash.Hash. The name doubles as the
// identity used by compliance-policy lookups, so it must be stable
// across releases.
//
// The SHA-1 and SHA-2 family come from the standard library; BLAKE2b
// and SHA3 variants are provided through golang.org/x/crypto for
// callers that derive keys outside the FIPS-approved set.
package digest
