package hkdf

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/fipskdf/digest"
	"github.com/opd-ai/fipskdf/fips"
	"github.com/opd-ai/fipskdf/keyedhash"
)

// maxBlocks caps the expand loop. The block counter is a single byte
// with values 1..255, so more blocks cannot be encoded.
const maxBlocks = 255

// Deriver runs the RFC 5869 operations over a keyed-hash provider.
// The zero value uses the HMAC default and is ready to use; tests
// substitute providers to exercise failure paths.
type Deriver struct {
	Provider keyedhash.Provider
}

func (d Deriver) provider() keyedhash.Provider {
	if d.Provider == nil {
		return keyedhash.HMAC{}
	}
	return d.Provider
}

// Extract derives a pseudorandom key of exactly alg.Size() bytes from
// secret and salt. An empty salt is forwarded as-is; the keyed-hash
// provider substitutes a zero-filled key per the HMAC convention, so
// it must not be special-cased here.
func (d Deriver) Extract(ind *fips.Indicator, alg digest.Algorithm, secret, salt []byte) ([]byte, error) {
	prk, err := d.extractSuppressed(ind, alg, secret, salt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Extract",
			"package":  "hkdf",
			"digest":   alg.Name(),
			"error":    err.Error(),
		}).Error("PRK extraction failed")
		ind.Record(fips.StatusNotApproved)
		return nil, fmt.Errorf("%w: extract: %s", ErrPrimitiveFailure, err)
	}
	ind.Evaluate(fips.Config{Digest: alg, SaltLen: len(salt)})
	return prk, nil
}

// extractSuppressed performs the single keyed-hash call with the
// indicator locked, so the provider's own verdict write is discarded.
func (d Deriver) extractSuppressed(ind *fips.Indicator, alg digest.Algorithm, secret, salt []byte) ([]byte, error) {
	defer ind.Suppress()()

	prk, err := d.provider().Sum(ind, alg, salt, secret)
	if err != nil {
		return nil, err
	}
	if len(prk) != alg.Size() {
		ZeroBytes(prk)
		return nil, fmt.Errorf("provider returned %d-byte tag, want %d", len(prk), alg.Size())
	}
	return prk, nil
}

// Expand fills out with len(out) bytes of output keying material
// stretched from prk and bound to info. The prk may be of any length;
// callers interoperating with non-RFC peers sometimes supply
// non-standard pseudorandom keys.
func (d Deriver) Expand(ind *fips.Indicator, alg digest.Algorithm, prk, info, out []byte) error {
	if err := expandBounds(alg, len(out)); err != nil {
		ind.Record(fips.StatusNotApproved)
		return err
	}

	if err := d.expandSuppressed(ind, alg, prk, info, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Expand",
			"package":  "hkdf",
			"digest":   alg.Name(),
			"out_size": len(out),
			"error":    err.Error(),
		}).Error("OKM expansion failed")
		ZeroBytes(out)
		ind.Record(fips.StatusNotApproved)
		return fmt.Errorf("%w: %s", ErrPrimitiveFailure, err)
	}
	ind.Evaluate(fips.Config{Digest: alg, InfoLen: len(info)})
	return nil
}

// expandBounds is the pure precondition: it must reject oversized or
// overflowing requests before any allocation or keyed-hash work.
func expandBounds(alg digest.Algorithm, outLen int) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: invalid digest algorithm", ErrPrimitiveFailure)
	}
	digestLen := alg.Size()
	if outLen > math.MaxInt-digestLen {
		return ErrOutputTooLarge
	}
	if n := (outLen + digestLen - 1) / digestLen; n > maxBlocks {
		return ErrOutputTooLarge
	}
	return nil
}

// expandSuppressed runs the RFC 5869 block loop with the indicator
// locked. The chain state lives in one fixed-capacity buffer, distinct
// from the caller's out slice, and is zeroized on every exit path.
func (d Deriver) expandSuppressed(ind *fips.Indicator, alg digest.Algorithm, prk, info, out []byte) error {
	defer ind.Suppress()()

	digestLen := alg.Size()
	n := (len(out) + digestLen - 1) / digestLen
	prov := d.provider()

	var previous [digest.MaxSize]byte
	defer ZeroBytes(previous[:])

	msg := make([]byte, 0, digestLen+len(info)+1)
	defer ZeroBytes(msg[:cap(msg)])

	done := 0
	for i := 1; i <= n; i++ {
		msg = msg[:0]
		if i > 1 {
			msg = append(msg, previous[:digestLen]...)
		}
		msg = append(msg, info...)
		msg = append(msg, byte(i))

		tag, err := prov.Sum(ind, alg, prk, msg)
		if err != nil {
			return fmt.Errorf("block %d: %s", i, err)
		}
		if len(tag) != digestLen {
			ZeroBytes(tag)
			return fmt.Errorf("block %d: provider returned %d-byte tag, want %d", i, len(tag), digestLen)
		}

		copy(previous[:digestLen], tag)
		ZeroBytes(tag)

		// The final block is truncated to the remaining length.
		done += copy(out[done:], previous[:digestLen])
	}
	return nil
}

// Derive composes Extract and Expand in one call, producing len(out)
// bytes of output keying material. The indicator is suppressed for the
// duration of both sub-steps; exactly one verdict, a pure function of
// (digest, salt length, info length), is recorded afterwards, and only
// if both steps succeeded.
func (d Deriver) Derive(ind *fips.Indicator, alg digest.Algorithm, secret, salt, info, out []byte) error {
	opID := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"function":    "Derive",
		"package":     "hkdf",
		"op_id":       opID,
		"digest":      alg.Name(),
		"secret_size": len(secret),
		"salt_size":   len(salt),
		"info_size":   len(info),
		"out_size":    len(out),
	}).Debug("Deriving output key material")

	ind.Reset()
	if err := d.deriveSuppressed(ind, alg, secret, salt, info, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Derive",
			"package":  "hkdf",
			"op_id":    opID,
			"error":    err.Error(),
		}).Error("Key derivation failed")
		ind.Record(fips.StatusNotApproved)
		return err
	}
	ind.Evaluate(fips.Config{Digest: alg, SaltLen: len(salt), InfoLen: len(info)})

	logrus.WithFields(logrus.Fields{
		"function": "Derive",
		"package":  "hkdf",
		"op_id":    opID,
		"verdict":  ind.Status().String(),
	}).Debug("Key derivation complete")
	return nil
}

// deriveSuppressed runs extract-then-expand with the indicator locked,
// so neither sub-step (nor their keyed-hash calls) records a verdict.
// The intermediate PRK never leaves this frame and is wiped on return.
func (d Deriver) deriveSuppressed(ind *fips.Indicator, alg digest.Algorithm, secret, salt, info, out []byte) error {
	defer ind.Suppress()()

	prk, err := d.Extract(ind, alg, secret, salt)
	if err != nil {
		return err
	}
	defer ZeroBytes(prk)

	return d.Expand(ind, alg, prk, info, out)
}

// Extract derives a PRK using the default HMAC provider.
func Extract(ind *fips.Indicator, alg digest.Algorithm, secret, salt []byte) ([]byte, error) {
	return Deriver{}.Extract(ind, alg, secret, salt)
}

// Expand stretches a PRK using the default HMAC provider.
func Expand(ind *fips.Indicator, alg digest.Algorithm, prk, info, out []byte) error {
	return Deriver{}.Expand(ind, alg, prk, info, out)
}

// Derive fills out with derived key material using the default HMAC
// provider.
func Derive(ind *fips.Indicator, alg digest.Algorithm, secret, salt, info, out []byte) error {
	return Deriver{}.Derive(ind, alg, secret, salt, info, out)
}

// Key allocates and returns outLen bytes of derived key material using
// the default HMAC provider.
func Key(ind *fips.Indicator, alg digest.Algorithm, secret, salt, info []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrOutputTooLarge
	}
	out := make([]byte, outLen)
	if err := Derive(ind, alg, secret, salt, info, out); err != nil {
		return nil, err
	}
	return out, nil
}
