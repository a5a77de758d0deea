package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// MaxSize is the largest output size of any registered algorithm, in
// bytes. Fixed-capacity buffers holding a single digest output are
// sized with this constant.
const MaxSize = 64

// ErrUnknownAlgorithm is returned when a name does not match any
// registered algorithm.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

// Algorithm describes a hash function with a fixed output size.
// The zero value is not a valid algorithm.
type Algorithm struct {
	name    string
	size    int
	factory func() hash.Hash
}

// Name returns the stable identity of the algorithm, suitable for
// policy lookups and logging.
func (a Algorithm) Name() string { return a.name }

// Size returns the output size of the algorithm in bytes.
func (a Algorithm) Size() int { return a.size }

// New constructs a fresh hash state. Returns nil for an invalid
// (zero-value) algorithm.
func (a Algorithm) New() hash.Hash {
	if a.factory == nil {
		return nil
	}
	return a.factory()
}

// Valid reports whether the algorithm is usable.
func (a Algorithm) Valid() bool {
	return a.factory != nil && a.size > 0 && a.size <= MaxSize
}

// Registered algorithms.
var (
	SHA1   = Algorithm{name: "SHA-1", size: sha1.Size, factory: sha1.New}
	SHA224 = Algorithm{name: "SHA-224", size: sha256.Size224, factory: sha256.New224}
	SHA256 = Algorithm{name: "SHA-256", size: sha256.Size, factory: sha256.New}
	SHA384 = Algorithm{name: "SHA-384", size: sha512.Size384, factory: sha512.New384}
	SHA512 = Algorithm{name: "SHA-512", size: sha512.Size, factory: sha512.New}

	SHA3_256 = Algorithm{name: "SHA3-256", size: 32, factory: func() hash.Hash { return sha3.New256() }}
	SHA3_512 = Algorithm{name: "SHA3-512", size: 64, factory: func() hash.Hash { return sha3.New512() }}

	BLAKE2b256 = Algorithm{name: "BLAKE2b-256", size: 32, factory: newBLAKE2b(32)}
	BLAKE2b512 = Algorithm{name: "BLAKE2b-512", size: 64, factory: newBLAKE2b(64)}
)

// All lists every registered algorithm.
var All = []Algorithm{
	SHA1, SHA224, SHA256, SHA384, SHA512,
	SHA3_256, SHA3_512,
	BLAKE2b256, BLAKE2b512,
}

// Lookup resolves an algorithm by its registered name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range All {
		if a.name == name {
			return a, nil
		}
	}
	return Algorithm{}, ErrUnknownAlgorithm
}

func newBLAKE2b(size int) func() hash.Hash {
	return func() hash.Hash {
		// blake2b.New only fails for invalid sizes or oversized keys;
		// both are fixed at registration time here.
		h, err := blake2b.New(size, nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}
