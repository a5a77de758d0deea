package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmSizes(t *testing.T) {
	cases := []struct {
		alg  Algorithm
		size int
	}{
		{SHA1, 20},
		{SHA224, 28},
		{SHA256, 32},
		{SHA384, 48},
		{SHA512, 64},
		{SHA3_256, 32},
		{SHA3_512, 64},
		{BLAKE2b256, 32},
		{BLAKE2b512, 64},
	}

	for _, tc := range cases {
		t.Run(tc.alg.Name(), func(t *testing.T) {
			assert.Equal(t, tc.size, tc.alg.Size())

			h := tc.alg.New()
			require.NotNil(t, h)
			assert.Equal(t, tc.size, h.Size(), "descriptor size must match the hash")
		})
	}
}

func TestAllWithinMaxSize(t *testing.T) {
	for _, alg := range All {
		assert.True(t, alg.Valid(), alg.Name())
		assert.LessOrEqual(t, alg.Size(), MaxSize, alg.Name())
	}
}

func TestLookup(t *testing.T) {
	for _, alg := range All {
		found, err := Lookup(alg.Name())
		require.NoError(t, err, alg.Name())
		assert.Equal(t, alg.Name(), found.Name())
		assert.Equal(t, alg.Size(), found.Size())
	}

	_, err := Lookup("MD5")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestZeroValueIsInvalid(t *testing.T) {
	var alg Algorithm
	assert.False(t, alg.Valid())
	assert.Nil(t, alg.New())
}

func TestNewReturnsFreshState(t *testing.T) {
	h1 := SHA256.New()
	h2 := SHA256.New()
	h1.Write([]byte("diverge"))
	assert.NotEqual(t, h1.Sum(nil), h2.Sum(nil))
}
