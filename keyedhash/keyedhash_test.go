package keyedhash

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/fipskdf/digest"
	"github.com/opd-ai/fipskdf/fips"
)

func TestSumMatchesCryptoHMAC(t *testing.T) {
	key := []byte("key material")
	message := []byte("the quick brown fox")

	tag, err := Sum(nil, digest.SHA256, key, message)
	require.NoError(t, err)

	ref := hmac.New(sha256.New, key)
	ref.Write(message)
	assert.Equal(t, ref.Sum(nil), tag)
}

func TestSumTagLength(t *testing.T) {
	for _, alg := range digest.All {
		t.Run(alg.Name(), func(t *testing.T) {
			tag, err := Sum(nil, alg, []byte("key"), []byte("message"))
			require.NoError(t, err)
			assert.Len(t, tag, alg.Size())
		})
	}
}

func TestSumEmptyKey(t *testing.T) {
	// crypto/hmac pads an empty key to a zero-filled block; an empty
	// key and a nil key must produce the same tag.
	empty, err := Sum(nil, digest.SHA256, []byte{}, []byte("message"))
	require.NoError(t, err)
	nilKey, err := Sum(nil, digest.SHA256, nil, []byte("message"))
	require.NoError(t, err)
	assert.Equal(t, empty, nilKey)
}

func TestSumInvalidDigest(t *testing.T) {
	ind := fips.New(nil)
	_, err := Sum(ind, digest.Algorithm{}, []byte("key"), []byte("message"))
	assert.ErrorIs(t, err, ErrInvalidDigest)
	assert.Equal(t, fips.StatusNotApproved, ind.Status())
}

func TestSumRecordsVerdictWhenStandalone(t *testing.T) {
	ind := fips.New(nil)
	_, err := Sum(ind, digest.SHA256, []byte("key"), []byte("message"))
	require.NoError(t, err)
	assert.Equal(t, fips.StatusApproved, ind.Status())

	ind = fips.New(nil)
	_, err = Sum(ind, digest.BLAKE2b256, []byte("key"), []byte("message"))
	require.NoError(t, err)
	assert.Equal(t, fips.StatusNotApproved, ind.Status())
}

func TestSumSuppressedLeavesVerdictAlone(t *testing.T) {
	ind := fips.New(nil)
	ind.Record(fips.StatusApproved)

	release := ind.Suppress()
	_, err := Sum(ind, digest.SHA1, []byte("key"), []byte("message"))
	release()

	require.NoError(t, err)
	assert.Equal(t, fips.StatusApproved, ind.Status(),
		"suppressed provider call must not overwrite the outer verdict")
}
