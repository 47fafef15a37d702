package schnorr_test

import (
	"crypto/rand"
	"fmt"

	"github.com/f3rmion/dlsig/modp"
	"github.com/f3rmion/dlsig/schnorr"
)

func Example() {
	params, err := modp.Generate(rand.Reader, 256)
	if err != nil {
		panic(err)
	}
	scheme, _ := schnorr.New(params)

	alice, _ := scheme.GenerateKey(rand.Reader)
	bob, _ := scheme.GenerateKey(rand.Reader)

	sig, err := scheme.Sign(rand.Reader, alice, []byte("Hello World"))
	if err != nil {
		panic(err)
	}

	fmt.Println(scheme.Verify(sig, alice.PublicKey))
	fmt.Println(scheme.Verify(sig, bob.PublicKey))
	// Output:
	// true
	// false
}
