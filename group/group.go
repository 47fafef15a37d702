package group

import (
	"errors"
	"io"
	"math/big"
)

// ErrGeneration is returned, possibly wrapped, when the entropy source or
// the arithmetic needed to produce a value fails. It is never retried.
var ErrGeneration = errors.New("group: generation failed")

// Element represents an element of a cyclic group of prime order, written
// multiplicatively.
//
// All arithmetic methods use a mutable receiver pattern: they modify the
// receiver, store the result in it, and return it.
type Element interface {
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Element) Element
	// Exp sets the receiver to a^k and returns it. k must be non-negative
	// and may exceed the group order.
	Exp(a Element, k *big.Int) Element
	// Set sets the receiver to a and returns it.
	Set(a Element) Element
	// Bytes returns the canonical byte representation of the element.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data does not encode a valid element.
	SetBytes(data []byte) (Element, error)
	// Equal reports whether the receiver equals b.
	Equal(b Element) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group is a cyclic group of prime order together with a fixed generator.
//
// Example usage:
//
//	params, _ := modp.Generate(rand.Reader, 256)
//	k, _ := params.RandomScalar(rand.Reader)
//	r := params.NewElement().Exp(params.Generator(), k)
type Group interface {
	// NewElement returns a new identity element.
	NewElement() Element
	// Generator returns the group's generator.
	Generator() Element
	// Order returns a copy of the group order.
	Order() *big.Int
	// RandomScalar returns an exponent uniformly distributed in [0, order).
	RandomScalar(r io.Reader) (*big.Int, error)
}
