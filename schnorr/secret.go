package schnorr

import "math/big"

// secret holds a private integer that can be overwritten in place.
type secret struct {
	v *big.Int
}

func newSecret(v *big.Int) *secret {
	return &secret{v: v}
}

// wipe zeroes the words backing the value and drops the reference.
// This is best effort: earlier copies made by big.Int arithmetic are
// outside its reach.
func (s *secret) wipe() {
	if s.v == nil {
		return
	}
	words := s.v.Bits()
	for i := range words {
		words[i] = 0
	}
	s.v.SetInt64(0)
	s.v = nil
}

func (s *secret) wiped() bool {
	return s.v == nil
}
