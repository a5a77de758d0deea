package keyedhash

import (
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/fipskdf/digest"
	"github.com/opd-ai/fipskdf/fips"
)

// ErrInvalidDigest is returned when the digest descriptor cannot
// construct a hash state.
var ErrInvalidDigest = errors.New("keyedhash: invalid digest algorithm")

// Provider computes a keyed-hash tag of exactly alg.Size() bytes.
//
// Implementations must treat an empty key per the HMAC convention
// (substitute a zero-filled key internally); callers never pad. Every
// call records its own compliance verdict on ind; inside a composed
// operation the indicator is suppressed and the write is discarded.
type Provider interface {
	Sum(ind *fips.Indicator, alg digest.Algorithm, key, message []byte) ([]byte, error)
}

// HMAC is the default provider, backed by crypto/hmac.
type HMAC struct{}

// Sum computes HMAC(key, message) over the given digest.
func (HMAC) Sum(ind *fips.Indicator, alg digest.Algorithm, key, message []byte) ([]byte, error) {
	if !alg.Valid() {
		ind.Record(fips.StatusNotApproved)
		return nil, ErrInvalidDigest
	}

	mac := hmac.New(alg.New, key)
	if _, err := mac.Write(message); err != nil {
		// hash.Hash writers do not fail in practice; surface it anyway
		// rather than return a truncated tag.
		logrus.WithFields(logrus.Fields{
			"function": "Sum",
			"package":  "keyedhash",
			"digest":   alg.Name(),
			"error":    err.Error(),
		}).Error("Keyed-hash computation failed")
		ind.Record(fips.StatusNotApproved)
		return nil, fmt.Errorf("keyedhash: %w", err)
	}

	ind.Evaluate(fips.Config{Digest: alg, SaltLen: len(key), InfoLen: len(message)})
	return mac.Sum(nil), nil
}

// Sum computes a standalone tag with the default HMAC provider.
func Sum(ind *fips.Indicator, alg digest.Algorithm, key, message []byte) ([]byte, error) {
	return HMAC{}.Sum(ind, alg, key, message)
}
