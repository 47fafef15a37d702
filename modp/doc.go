// Package modp provides the safe-prime Schnorr group: the subgroup of
// quadratic residues of Z_p^* for a safe prime p = 2q+1, which has prime
// order q. It implements [group.Group] for use with package schnorr.
//
// # Parameters
//
// A [Params] value holds p, q and a generator g of the order-q subgroup.
// Fresh parameters come from [Generate]:
//
//	params, err := modp.Generate(rand.Reader, 256)
//
// Parameters obtained from a peer are rebuilt and checked with [New]:
//
//	params, err := modp.New(p, q, g)
//
// Params is immutable and may be shared by any number of key pairs and
// concurrent signing or verification calls.
//
// # Encoding
//
// Elements encode as the minimal big-endian byte string of their integer
// value, without padding. This encoding is what the challenge hash of
// package schnorr consumes.
package modp
