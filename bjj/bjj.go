package bjj

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/dlsig/group"
)

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Element] by wrapping gnark-crypto's PointAffine,
// with the group law written multiplicatively: Mul is point addition and
// Exp is scalar multiplication.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Mul sets p to a + b and returns p.
func (p *Point) Mul(a, b group.Element) group.Element {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Exp sets p to k * a and returns p.
// k is reduced modulo the subgroup order first.
func (p *Point) Exp(a group.Element, k *big.Int) group.Element {
	aPoint := a.(*Point)
	reduced := new(big.Int).Mod(k, curveOrder)
	p.inner.ScalarMultiplication(&aPoint.inner, reduced)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	var q twistededwards.PointAffine
	if err := q.Unmarshal(data); err != nil {
		return nil, err
	}
	if !q.IsOnCurve() {
		return nil, fmt.Errorf("bjj: point not on curve")
	}
	p.inner.Set(&q)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Element) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// NewElement returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewElement() group.Element {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Element {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// Order returns a copy of the order of the Baby Jubjub curve's
// prime-order subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// RandomScalar returns an exponent uniformly distributed in
// [0, curveOrder), read from r.
func (g *BJJ) RandomScalar(r io.Reader) (*big.Int, error) {
	k, err := rand.Int(r, curveOrder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", group.ErrGeneration, err)
	}
	return k, nil
}
