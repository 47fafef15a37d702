package bjj

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/f3rmion/dlsig/group"
)

func TestScalar(t *testing.T) {
	g := &BJJ{}

	t.Run("RandomInRange", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			k, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			if k.Sign() < 0 || k.Cmp(g.Order()) >= 0 {
				t.Fatalf("scalar outside [0, order): %v", k)
			}
		}
	})

	t.Run("OrderIsCopy", func(t *testing.T) {
		g.Order().SetInt64(0)
		if g.Order().Sign() == 0 {
			t.Error("Order exposed internal state")
		}
	})
}

func TestPoint(t *testing.T) {
	g := &BJJ{}

	t.Run("MulExp", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)
		P := g.NewElement().Exp(g.Generator(), a)
		Q := g.NewElement().Exp(g.Generator(), b)

		sum := g.NewElement().Mul(P, Q)
		want := g.NewElement().Exp(g.Generator(), new(big.Int).Add(a, b))

		if !sum.Equal(want) {
			t.Error("aG + bG != (a+b)G")
		}
	})

	t.Run("GeneratorOrder", func(t *testing.T) {
		P := g.NewElement().Exp(g.Generator(), g.Order())
		if !P.IsIdentity() {
			t.Error("order * G != identity")
		}
	})

	t.Run("UnreducedExponent", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		wide := new(big.Int).Lsh(g.Order(), 200)
		wide.Add(wide, k)

		if !g.NewElement().Exp(g.Generator(), wide).Equal(g.NewElement().Exp(g.Generator(), k)) {
			t.Error("(k + order*2^200)G != kG")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewElement().Exp(g.Generator(), s)

		restored, err := g.NewElement().SetBytes(P.Bytes())
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewElement()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})

	t.Run("SetCopies", func(t *testing.T) {
		P := g.NewElement().Set(g.Generator())
		P.Mul(P, P)
		if P.Equal(g.Generator()) {
			t.Error("Set aliased the generator")
		}
	})
}

var _ group.Group = (*BJJ)(nil)
var _ group.Element = (*Point)(nil)
