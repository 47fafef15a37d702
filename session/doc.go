// Package session provides a high-level signing API on top of package
// schnorr. A [Signer] owns one key pair, serializes access to it, and
// destroys the private key when the session ends.
//
// The schnorr package leaves key lifetime to the caller. This package is
// for applications that want the private key confined to one value with a
// clear end of life:
//
//	scheme, _ := schnorr.New(params)
//
//	signer, err := session.NewSigner(scheme, rand.Reader)
//	if err != nil {
//		return err
//	}
//	defer signer.Close()
//
//	// Publish signer.PublicKey() over an authenticated channel.
//
//	sig, err := signer.Sign(message)
//	if err != nil {
//		return err
//	}
//
// After Close, Sign returns [ErrClosed] and the private key words have been
// overwritten. The public key remains available for verification.
//
// # Transport Agnostic
//
// This package does not serialize keys or signatures and does not handle
// network communication.
package session
