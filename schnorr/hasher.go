package schnorr

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher derives the signature challenge from a commitment and a message.
// Different implementations provide different hash functions; signer and
// verifier must agree on one.
//
// Implementations must use a fresh hash state per call so that no state
// carries over between signing operations.
type Hasher interface {
	// Challenge hashes commitment || message and returns the digest read as
	// a big-endian unsigned integer. The result is not reduced modulo the
	// group order.
	Challenge(commitment, message []byte) *big.Int
}

func challenge(h hash.Hash, commitment, message []byte) *big.Int {
	h.Write(commitment)
	h.Write(message)
	return new(big.Int).SetBytes(h.Sum(nil))
}

// SHA3Hasher implements Hasher using SHA3-512.
// This is the default hasher.
type SHA3Hasher struct{}

// Challenge implements Hasher.Challenge.
func (SHA3Hasher) Challenge(commitment, message []byte) *big.Int {
	return challenge(sha3.New512(), commitment, message)
}

// Blake2bHasher implements Hasher using unkeyed BLAKE2b-512.
type Blake2bHasher struct{}

// Challenge implements Hasher.Challenge.
func (Blake2bHasher) Challenge(commitment, message []byte) *big.Int {
	h, _ := blake2b.New512(nil) // only fails for keys over 64 bytes
	return challenge(h, commitment, message)
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// Challenge implements Hasher.Challenge.
func (SHA256Hasher) Challenge(commitment, message []byte) *big.Int {
	return challenge(sha256.New(), commitment, message)
}

// HasherByName returns the hasher registered under name:
// "sha3-512", "blake2b-512" or "sha256".
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "sha3-512":
		return SHA3Hasher{}, nil
	case "blake2b-512":
		return Blake2bHasher{}, nil
	case "sha256":
		return SHA256Hasher{}, nil
	}
	return nil, fmt.Errorf("unknown hasher %q", name)
}
