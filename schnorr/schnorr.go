package schnorr

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"

	"github.com/f3rmion/dlsig/group"
)

// ErrKeyDestroyed is returned when signing with a key pair whose private key
// has been wiped by [KeyPair.Destroy].
var ErrKeyDestroyed = errors.New("schnorr: private key destroyed")

// Scheme binds a group to the hash used for challenges.
type Scheme struct {
	group  group.Group
	hasher Hasher
}

// KeyPair is a private exponent x in [0, q) together with the public
// element y = g^(q-x).
//
// The private key never leaves the package. A KeyPair is immutable apart
// from [KeyPair.Destroy], which must not run concurrently with signing;
// session.Signer provides that synchronization.
type KeyPair struct {
	private   *secret
	PublicKey group.Element
	group     group.Group
}

// Signature is a Schnorr signature over Message.
//
// Challenge is the hash of the commitment and the message read as an
// integer; it is not reduced modulo the group order. Response is
// (x*Challenge + nonce) mod q.
type Signature struct {
	Message   []byte
	Challenge *big.Int
	Response  *big.Int
}

// New creates a Scheme over g that hashes challenges with SHA3-512.
func New(g group.Group) (*Scheme, error) {
	return NewWithHasher(g, SHA3Hasher{})
}

// NewWithHasher creates a Scheme over g with a custom challenge hash.
func NewWithHasher(g group.Group, h Hasher) (*Scheme, error) {
	if g == nil {
		return nil, errors.New("group must not be nil")
	}
	if h == nil {
		return nil, errors.New("hasher must not be nil")
	}
	return &Scheme{group: g, hasher: h}, nil
}

// Group returns the group the scheme operates in.
func (s *Scheme) Group() group.Group {
	return s.group
}

// Hasher returns the challenge hash.
func (s *Scheme) Hasher() Hasher {
	return s.hasher
}

// GenerateKey derives a fresh key pair: x uniform in [0, q) and
// y = g^(q-x), which equals g^(-x) since g^q = 1.
func (s *Scheme) GenerateKey(r io.Reader) (*KeyPair, error) {
	x, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to draw private key: %w", err)
	}

	exp := s.group.Order()
	exp.Sub(exp, x)
	y := s.group.NewElement().Exp(s.group.Generator(), exp)

	return &KeyPair{
		private:   newSecret(x),
		PublicKey: y,
		group:     s.group,
	}, nil
}

// Group returns the group the key pair was derived in.
func (kp *KeyPair) Group() group.Group {
	return kp.group
}

// Destroy overwrites the private key. Later calls to [Scheme.Sign] with
// this key pair return [ErrKeyDestroyed]. Destroy is idempotent.
func (kp *KeyPair) Destroy() {
	kp.private.wipe()
}

// Destroyed reports whether [KeyPair.Destroy] has been called.
func (kp *KeyPair) Destroyed() bool {
	return kp.private.wiped()
}

// Sign signs message with kp, drawing a fresh nonce from r.
//
//  1. k uniform in [0, q)
//  2. R = g^k
//  3. e = H(bytes(R) || message), unreduced
//  4. s = (x*e + k) mod q
//
// The message is copied into the returned signature. Every call draws a
// new nonce; two signatures sharing a nonce under one key reveal the key.
func (s *Scheme) Sign(r io.Reader, kp *KeyPair, message []byte) (*Signature, error) {
	if kp == nil {
		return nil, errors.New("key pair must not be nil")
	}
	if kp.group == nil || !s.sameGroup(kp.group) {
		return nil, errors.New("key pair belongs to a different group")
	}
	q := s.group.Order()

	if kp.private.wiped() {
		return nil, ErrKeyDestroyed
	}

	k, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to draw nonce: %w", err)
	}

	commitment := s.group.NewElement().Exp(s.group.Generator(), k)
	e := s.hasher.Challenge(commitment.Bytes(), message)

	resp := new(big.Int).Mul(kp.private.v, e)
	resp.Add(resp, k)
	resp.Mod(resp, q)

	// k and the signature together reveal x.
	newSecret(k).wipe()

	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	return &Signature{
		Message:   msgCopy,
		Challenge: e,
		Response:  resp,
	}, nil
}

// Verify reports whether sig is a valid signature by the holder of
// publicKey.
//
// It recomputes R' = g^Response * publicKey^Challenge and accepts iff
// H(bytes(R') || Message) equals Challenge. Malformed input yields false,
// including a public key from another group implementation. Negative
// Challenge or Response values are not canonical and are rejected rather
// than reduced. Verify is deterministic.
func (s *Scheme) Verify(sig *Signature, publicKey group.Element) bool {
	if sig == nil || sig.Challenge == nil || sig.Response == nil {
		return false
	}
	if !sameBackend(publicKey, s.group.NewElement()) {
		return false
	}
	if sig.Challenge.Sign() < 0 || sig.Response.Sign() < 0 {
		return false
	}

	gs := s.group.NewElement().Exp(s.group.Generator(), sig.Response)
	ye := s.group.NewElement().Exp(publicKey, sig.Challenge)
	commitment := s.group.NewElement().Mul(gs, ye)

	e := s.hasher.Challenge(commitment.Bytes(), sig.Message)
	return e.Cmp(sig.Challenge) == 0
}

// sameGroup reports whether g has the scheme's implementation, order and
// generator.
func (s *Scheme) sameGroup(g group.Group) bool {
	gen, own := g.Generator(), s.group.Generator()
	if !sameBackend(gen, own) {
		return false
	}
	return g.Order().Cmp(s.group.Order()) == 0 && gen.Equal(own)
}

// sameBackend reports whether e is a non-nil element of the same concrete
// type as ref.
func sameBackend(e, ref group.Element) bool {
	if e == nil {
		return false
	}
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return v.Type() == reflect.TypeOf(ref)
}
