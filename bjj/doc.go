// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface, so the Schnorr scheme in package schnorr can run
// over a curve instead of a safe-prime group.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto.
// The group interface is multiplicative, so point addition is exposed as
// Mul and scalar multiplication as Exp.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Usage
//
//	scheme, err := schnorr.New(&bjj.BJJ{})
//
// # Encoding
//
// Points encode as gnark-crypto's 32-byte compressed form. Signature
// commitments are hashed in this form.
package bjj
