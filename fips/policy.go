package fips

import "github.com/opd-ai/fipskdf/digest"

// Config is the parameter set a policy evaluates. The verdict is a
// pure function of these values; it never depends on execution state.
type Config struct {
	Digest  digest.Algorithm
	SaltLen int
	InfoLen int
}

// Policy decides whether an operation's configuration is approved.
// Implementations must be pure: same Config, same Status.
type Policy interface {
	Evaluate(cfg Config) Status
}

// DigestAllowlist approves a configuration when its digest's name is
// in the set, regardless of salt or info lengths. It is the injected
// policy-table shape used by the default policy; deployments with
// stricter certification requirements substitute their own Policy.
type DigestAllowlist map[string]bool

// Evaluate implements Policy.
func (p DigestAllowlist) Evaluate(cfg Config) Status {
	if p[cfg.Digest.Name()] {
		return StatusApproved
	}
	return StatusNotApproved
}

// ApprovedDigests builds an allowlist policy from algorithm names.
func ApprovedDigests(names ...string) DigestAllowlist {
	p := make(DigestAllowlist, len(names))
	for _, name := range names {
		p[name] = true
	}
	return p
}

// DefaultPolicy approves the SHA-2 family. SHA-1, SHA3 and BLAKE2b
// derivations are reported as not approved.
func DefaultPolicy() Policy {
	return ApprovedDigests(
		digest.SHA224.Name(),
		digest.SHA256.Name(),
		digest.SHA384.Name(),
		digest.SHA512.Name(),
	)
}
