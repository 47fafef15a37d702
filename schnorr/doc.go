// Package schnorr implements Schnorr signatures over an arbitrary
// prime-order group.
//
// # Key Generation
//
// A [Scheme] pairs a [group.Group] with a [Hasher]. Keys are drawn with
// [Scheme.GenerateKey]: the private key x is uniform in [0, q) and the
// public key is y = g^(q-x). Key pairs derived from one group share its
// parameters read-only.
//
// # Signing
//
// [Scheme.Sign] draws a fresh nonce k, commits to R = g^k, computes the
// challenge e = H(bytes(R) || m) and the response s = (x*e + k) mod q.
// The challenge is the raw digest read as an integer and is never reduced
// modulo q; verification recomputes the same unreduced value.
//
// # Verification
//
// [Scheme.Verify] recomputes R' = g^s * y^e, which equals g^k for an
// honest signature, and accepts iff H(bytes(R') || m) == e. An invalid
// signature is a false result, not an error.
//
// # Example
//
//	params, _ := modp.Generate(rand.Reader, 256)
//	scheme, _ := schnorr.New(params)
//
//	alice, _ := scheme.GenerateKey(rand.Reader)
//	sig, _ := scheme.Sign(rand.Reader, alice, []byte("Hello World"))
//
//	valid := scheme.Verify(sig, alice.PublicKey)
//
// # Security Considerations
//
// Nonces must never be reused; Sign draws a new one on every call. The
// random source must be cryptographically secure. Arithmetic is not
// constant-time. [KeyPair.Destroy] wipes the private key on a best-effort
// basis.
package schnorr
