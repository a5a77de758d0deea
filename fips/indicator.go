package fips

import (
	"github.com/sirupsen/logrus"
)

// Status is the compliance verdict of the most recently completed
// operation observed through an Indicator.
type Status int

const (
	// StatusNotEvaluated means no operation has recorded a verdict yet,
	// or the last operation failed before its policy evaluation.
	StatusNotEvaluated Status = iota
	// StatusApproved means the last completed operation used an
	// approved algorithm configuration.
	StatusApproved
	// StatusNotApproved means the last completed operation used a
	// configuration outside the approved set.
	StatusNotApproved
)

// String implements fmt.Stringer for log fields.
func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusNotApproved:
		return "not approved"
	default:
		return "not evaluated"
	}
}

// Indicator carries the compliance verdict for one operation and the
// suppression depth that keeps nested primitive calls from overwriting
// it. A nil *Indicator is valid everywhere and discards all updates,
// for callers that do not consume verdicts.
type Indicator struct {
	status Status
	depth  int
	policy Policy
}

// New returns an indicator in the idle, not-evaluated state. A nil
// policy selects [DefaultPolicy].
func New(policy Policy) *Indicator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Indicator{policy: policy}
}

// Status returns the current verdict.
func (ind *Indicator) Status() Status {
	if ind == nil {
		return StatusNotEvaluated
	}
	return ind.status
}

// Reset clears the verdict at the start of a top-level operation.
// Like Record, it is discarded while suppressed: a composed operation
// running inside an outer suppression window must not disturb the
// outer operation's state.
func (ind *Indicator) Reset() {
	if ind == nil || ind.depth > 0 {
		return
	}
	ind.status = StatusNotEvaluated
}

// Lock increments the suppression depth. While the depth is above
// zero, Record calls are discarded.
func (ind *Indicator) Lock() {
	if ind == nil {
		return
	}
	ind.depth++
}

// Unlock decrements the suppression depth, with a floor at zero. An
// unmatched Unlock is a bug in the caller; it is logged and ignored
// rather than allowed to drive the depth negative.
func (ind *Indicator) Unlock() {
	if ind == nil {
		return
	}
	if ind.depth == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "Unlock",
			"package":  "fips",
		}).Warn("Indicator unlock without matching lock")
		return
	}
	ind.depth--
}

// Suppressed reports whether Record calls are currently discarded.
func (ind *Indicator) Suppressed() bool {
	return ind != nil && ind.depth > 0
}

// Suppress locks the indicator and returns the matching release. The
// release is safe to run on every exit path, including error returns:
//
//	defer ind.Suppress()()
func (ind *Indicator) Suppress() func() {
	ind.Lock()
	return ind.Unlock
}

// Record stores a verdict unless the indicator is suppressed. Nested
// primitive calls inside a composed operation hit the suppressed case
// and leave the composed operation's verdict alone.
func (ind *Indicator) Record(status Status) {
	if ind == nil || ind.depth > 0 {
		return
	}
	ind.status = status
}

// Evaluate runs the policy over cfg and records the verdict, subject
// to the same suppression rule as Record. Operations call this exactly
// once, after their primitive work succeeded; the verdict is a pure
// function of cfg, never of execution outcome.
func (ind *Indicator) Evaluate(cfg Config) {
	if ind == nil || ind.depth > 0 {
		return
	}
	policy := ind.policy
	if policy == nil {
		// Zero-value indicators still evaluate sensibly.
		policy = DefaultPolicy()
	}
	ind.status = policy.Evaluate(cfg)
}
