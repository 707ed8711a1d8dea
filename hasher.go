package hashmap

import (
	"github.com/cespare/xxhash/v2"
)

// Multipliers for the two independent hash functions. Both are prime and
// larger than the ASCII alphabet.
const (
	prime1 = 157
	prime2 = 211
)

// Hasher maps a key to an integer in [0, modulus) for a given multiplier.
// Distinct multipliers must yield independent values for the same key.
type Hasher interface {
	Hash(key string, multiplier, modulus uint64) uint64
}

// PolynomialHasher treats the key as a base-multiplier polynomial over its
// byte codes, reduced modulo modulus at every step.
type PolynomialHasher struct{}

func (PolynomialHasher) Hash(key string, multiplier, modulus uint64) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = (h*multiplier + uint64(key[i])) % modulus
	}
	return h
}

// XXHasher seeds an xxhash digest with the multiplier. The digest is reset
// and reused on every call, so an XXHasher must not be shared between
// goroutines. The zero value is ready to use.
type XXHasher struct {
	d xxhash.Digest
}

func (h *XXHasher) Hash(key string, multiplier, modulus uint64) uint64 {
	h.d.ResetWithSeed(multiplier)
	_, _ = h.d.WriteString(key)
	return h.d.Sum64() % modulus
}

// hasherByName resolves the names accepted in configuration.
func hasherByName(name string) (Hasher, bool) {
	switch name {
	case "", "polynomial":
		return PolynomialHasher{}, true
	case "xxhash":
		return &XXHasher{}, true
	}
	return nil, false
}
