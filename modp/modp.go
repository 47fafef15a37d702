package modp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/dlsig/group"
)

// ErrInvalidParams is returned when a prime, order and generator triple does
// not describe an order-q subgroup of Z_p^* for a safe prime p = 2q+1.
var ErrInvalidParams = errors.New("modp: invalid group parameters")

// MinBits is the smallest prime size accepted by [Generate].
const MinBits = 3

// primeRounds is the Miller-Rabin round count passed to ProbablyPrime.
// ProbablyPrime also applies a Baillie-PSW test.
const primeRounds = 20

// generatorAttempts bounds the squaring loop in [Generate]. For any safe
// prime at least half of all draws succeed.
const generatorAttempts = 128

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Params holds a safe prime p, the prime order q = (p-1)/2 of the subgroup
// of quadratic residues, and a generator g of that subgroup.
//
// Params implements [group.Group]. It is immutable once constructed and
// safe for concurrent use; accessors return copies.
type Params struct {
	prime     *big.Int
	order     *big.Int
	generator *big.Int
}

// Generate builds fresh group parameters with a safe prime of exactly bits
// bits. A nil rng uses crypto/rand.Reader.
//
// The subgroup order q is drawn as a (bits-1)-bit prime and p = 2q+1 is
// tested for primality, so both halves of the safe-prime pair hold by
// construction. The generator is the square of a random element, rejecting
// 0 and 1, since the nonzero squares modulo a safe prime are exactly the
// order-q subgroup.
func Generate(rng io.Reader, bits int) (*Params, error) {
	if rng == nil {
		rng = rand.Reader
	}
	if bits < MinBits {
		return nil, fmt.Errorf("%w: prime size %d is below %d bits", group.ErrGeneration, bits, MinBits)
	}

	p, q, err := safePrime(rng, bits)
	if err != nil {
		return nil, err
	}

	g, err := squareGenerator(rng, p)
	if err != nil {
		return nil, err
	}

	return &Params{prime: p, order: q, generator: g}, nil
}

func safePrime(rng io.Reader, bits int) (p, q *big.Int, err error) {
	for attempt := 0; attempt < 64*bits; attempt++ {
		q, err = rand.Prime(rng, bits-1)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", group.ErrGeneration, err)
		}
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if p.BitLen() == bits && p.ProbablyPrime(primeRounds) {
			return p, q, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: no %d-bit safe prime found", group.ErrGeneration, bits)
}

func squareGenerator(rng io.Reader, p *big.Int) (*big.Int, error) {
	for range generatorAttempts {
		t, err := rand.Int(rng, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", group.ErrGeneration, err)
		}
		g := new(big.Int).Exp(t, two, p)
		if g.Cmp(one) > 0 {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: no generator found", group.ErrGeneration)
}

// New rebuilds group parameters from known values, for example parameters
// received from a peer, and validates them.
func New(prime, order, generator *big.Int) (*Params, error) {
	if prime == nil || order == nil || generator == nil {
		return nil, fmt.Errorf("%w: missing value", ErrInvalidParams)
	}
	params := &Params{
		prime:     new(big.Int).Set(prime),
		order:     new(big.Int).Set(order),
		generator: new(big.Int).Set(generator),
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks that p and q are prime, p = 2q+1, 1 < g < p and
// g^q = 1 (mod p).
func (pp *Params) Validate() error {
	p, q, g := pp.prime, pp.order, pp.generator

	if p.Sign() <= 0 || !p.ProbablyPrime(primeRounds) {
		return fmt.Errorf("%w: modulus is not prime", ErrInvalidParams)
	}
	if q.Sign() <= 0 || !q.ProbablyPrime(primeRounds) {
		return fmt.Errorf("%w: order is not prime", ErrInvalidParams)
	}
	want := new(big.Int).Lsh(q, 1)
	want.Add(want, one)
	if want.Cmp(p) != 0 {
		return fmt.Errorf("%w: modulus is not 2*order+1", ErrInvalidParams)
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return fmt.Errorf("%w: generator out of range", ErrInvalidParams)
	}
	if new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
		return fmt.Errorf("%w: generator does not have order q", ErrInvalidParams)
	}
	return nil
}

// Prime returns a copy of the safe prime p.
func (pp *Params) Prime() *big.Int {
	return new(big.Int).Set(pp.prime)
}

// Order returns a copy of the subgroup order q = (p-1)/2.
func (pp *Params) Order() *big.Int {
	return new(big.Int).Set(pp.order)
}

// GeneratorInt returns a copy of the generator g as an integer.
func (pp *Params) GeneratorInt() *big.Int {
	return new(big.Int).Set(pp.generator)
}

// BitLen returns the size of p in bits.
func (pp *Params) BitLen() int {
	return pp.prime.BitLen()
}

// NewElement returns the identity element 1.
func (pp *Params) NewElement() group.Element {
	return &Element{v: big.NewInt(1), params: pp}
}

// Generator returns g as a group element.
func (pp *Params) Generator() group.Element {
	return pp.Element(pp.generator)
}

// Element wraps v as an element of this group. v is not reduced or checked;
// out-of-range values are reduced by the arithmetic that consumes them.
func (pp *Params) Element(v *big.Int) *Element {
	return &Element{v: new(big.Int).Set(v), params: pp}
}

// RandomScalar returns an exponent uniformly distributed in [0, q).
func (pp *Params) RandomScalar(r io.Reader) (*big.Int, error) {
	k, err := rand.Int(r, pp.order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", group.ErrGeneration, err)
	}
	return k, nil
}

// Element is an integer modulo p. It implements [group.Element].
type Element struct {
	v      *big.Int
	params *Params
}

// Int returns a copy of the element's integer value.
func (e *Element) Int() *big.Int {
	return new(big.Int).Set(e.v)
}

// Mul sets e to a*b mod p and returns e.
func (e *Element) Mul(a, b group.Element) group.Element {
	aElem := a.(*Element)
	bElem := b.(*Element)
	e.v.Mul(aElem.v, bElem.v)
	e.v.Mod(e.v, e.params.prime)
	return e
}

// Exp sets e to a^k mod p and returns e.
func (e *Element) Exp(a group.Element, k *big.Int) group.Element {
	aElem := a.(*Element)
	e.v.Exp(aElem.v, k, e.params.prime)
	return e
}

// Set copies the value of a into e and returns e.
func (e *Element) Set(a group.Element) group.Element {
	aElem := a.(*Element)
	e.v.Set(aElem.v)
	return e
}

// Bytes returns the minimal big-endian encoding of the element.
func (e *Element) Bytes() []byte {
	return e.v.Bytes()
}

// SetBytes sets e from a big-endian byte slice and returns e.
// Returns an error if the value is not in [1, p).
func (e *Element) SetBytes(data []byte) (group.Element, error) {
	v := new(big.Int).SetBytes(data)
	if v.Sign() == 0 || v.Cmp(e.params.prime) >= 0 {
		return nil, errors.New("modp: element out of range")
	}
	e.v.Set(v)
	return e, nil
}

// Equal reports whether e and b are congruent modulo p.
func (e *Element) Equal(b group.Element) bool {
	bElem := b.(*Element)
	p := e.params.prime
	x := new(big.Int).Mod(e.v, p)
	y := new(big.Int).Mod(bElem.v, p)
	return x.Cmp(y) == 0
}

// IsIdentity reports whether e is 1 modulo p.
func (e *Element) IsIdentity() bool {
	return new(big.Int).Mod(e.v, e.params.prime).Cmp(one) == 0
}
