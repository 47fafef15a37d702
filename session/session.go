package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/dlsig/group"
	"github.com/f3rmion/dlsig/schnorr"
)

// ErrClosed is returned when signing with a Signer after [Signer.Close].
var ErrClosed = errors.New("session: signer closed")

// Signer owns a key pair for the duration of a session and destroys its
// private key on Close. It is safe for concurrent use.
//
// Create signers using [NewSigner] or [NewSignerFromKey].
type Signer struct {
	mu     sync.Mutex
	scheme *schnorr.Scheme
	key    *schnorr.KeyPair
	rng    io.Reader
	closed bool
}

// NewSigner generates a fresh key pair for scheme and returns a Signer
// holding it. rng is used for key generation and for every nonce.
func NewSigner(scheme *schnorr.Scheme, rng io.Reader) (*Signer, error) {
	if scheme == nil {
		return nil, errors.New("scheme must not be nil")
	}
	if rng == nil {
		return nil, errors.New("random source must not be nil")
	}

	key, err := scheme.GenerateKey(rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	return &Signer{
		scheme: scheme,
		key:    key,
		rng:    rng,
	}, nil
}

// NewSignerFromKey returns a Signer that takes ownership of key.
// The caller must not use key directly afterwards; Close destroys it.
func NewSignerFromKey(scheme *schnorr.Scheme, key *schnorr.KeyPair, rng io.Reader) (*Signer, error) {
	if scheme == nil || key == nil {
		return nil, errors.New("scheme and key must not be nil")
	}
	if rng == nil {
		return nil, errors.New("random source must not be nil")
	}
	if key.Destroyed() {
		return nil, schnorr.ErrKeyDestroyed
	}

	return &Signer{
		scheme: scheme,
		key:    key,
		rng:    rng,
	}, nil
}

// PublicKey returns the public key. It stays valid after Close.
func (s *Signer) PublicKey() group.Element {
	return s.key.PublicKey
}

// Scheme returns the scheme the signer signs with.
func (s *Signer) Scheme() *schnorr.Scheme {
	return s.scheme
}

// Sign signs message with a fresh nonce.
// Returns [ErrClosed] once the signer has been closed.
func (s *Signer) Sign(message []byte) (*schnorr.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	return s.scheme.Sign(s.rng, s.key, message)
}

// Verify reports whether sig was produced by this signer's key.
func (s *Signer) Verify(sig *schnorr.Signature) bool {
	return s.scheme.Verify(sig, s.key.PublicKey)
}

// Close destroys the private key. It is idempotent and always returns nil.
func (s *Signer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.key.Destroy()
	return nil
}

// IsClosed returns true if the signer has been closed.
func (s *Signer) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
