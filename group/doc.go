// Package group defines abstract interfaces for the cyclic groups used by
// the Schnorr signature scheme in package schnorr.
//
// The interfaces abstract over the arithmetic the scheme needs:
//
//   - [Element]: Elements of a prime-order (sub)group, written multiplicatively
//   - [Group]: Factory and utility methods for elements and random exponents
//
// Exponents are plain *big.Int values rather than reduced scalars. The
// signature challenge is a hash digest read as an integer and is never
// reduced modulo the group order, so exponentiation must accept integers of
// any non-negative size.
//
// # Design Philosophy
//
// Elements use a mutable receiver pattern. Operations like Mul and Exp set
// the receiver to the result and return it, allowing method chaining while
// minimizing allocations:
//
//	// Compute g^s * y^e
//	r := g.NewElement().Mul(
//		g.NewElement().Exp(g.Generator(), s),
//		g.NewElement().Exp(y, e),
//	)
//
// Operations that consume entropy return errors wrapping [ErrGeneration]
// rather than panicking.
//
// # Implementations
//
// The modp package provides the safe-prime multiplicative group Z_p^* and
// its order-q subgroup of quadratic residues. The bjj package provides the
// Baby Jubjub twisted Edwards curve, where Mul is point addition and Exp is
// scalar multiplication.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Random exponents are uniform in [0, order) and drawn from the given reader
//   - Bytes is canonical, since it feeds the challenge hash
//   - SetBytes rejects encodings outside the group's carrier set
package group
