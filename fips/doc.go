// Package fips tracks whether a cryptographic operation used an
// approved algorithm configuration.
//
// Every primitive call can record a verdict on an [Indicator]. Composed
// operations (such as the HKDF orchestrator) suppress the indicator for
// the duration of their internal sub-calls and record exactly one
// verdict of their own afterwards, so the caller observes the composed
// operation's compliance status rather than that of the last internal
// primitive invocation.
//
// An Indicator belongs to a single operation on a single goroutine. It
// is deliberately not safe for concurrent use: two operations sharing
// one indicator would corrupt each other's verdicts. Lock and Unlock
// implement re-entrancy bookkeeping, not mutual exclusion.
//
// Which configurations count as approved is injected through the
// [Policy] interface; [DefaultPolicy] approves the SHA-2 family.
package fips
