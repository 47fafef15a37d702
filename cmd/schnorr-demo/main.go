package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/f3rmion/dlsig/bjj"
	"github.com/f3rmion/dlsig/group"
	"github.com/f3rmion/dlsig/modp"
	"github.com/f3rmion/dlsig/schnorr"
	"github.com/f3rmion/dlsig/session"
)

func main() {
	var (
		bits      = flag.Int("bits", 256, "Safe prime size in bits (modp group only)")
		message   = flag.String("message", "Hello World", "Message Alice signs")
		hashName  = flag.String("hash", "sha3-512", "Challenge hash (sha3-512, blake2b-512 or sha256)")
		groupName = flag.String("group", "modp", "Group to sign in (modp or bjj)")
	)
	flag.Parse()

	if err := run(*groupName, *hashName, *bits, []byte(*message)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(groupName, hashName string, bits int, message []byte) error {
	var g group.Group
	switch groupName {
	case "modp":
		params, err := modp.Generate(rand.Reader, bits)
		if err != nil {
			return err
		}
		fmt.Printf("Generated %d-bit safe prime group\n", params.BitLen())
		g = params
	case "bjj":
		g = &bjj.BJJ{}
	default:
		return fmt.Errorf("unknown group %q", groupName)
	}

	hasher, err := schnorr.HasherByName(hashName)
	if err != nil {
		return err
	}
	scheme, err := schnorr.NewWithHasher(g, hasher)
	if err != nil {
		return err
	}

	alice, err := session.NewSigner(scheme, rand.Reader)
	if err != nil {
		return fmt.Errorf("alice: %w", err)
	}
	defer alice.Close()

	bob, err := session.NewSigner(scheme, rand.Reader)
	if err != nil {
		return fmt.Errorf("bob: %w", err)
	}
	defer bob.Close()

	sig, err := alice.Sign(message)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	fmt.Printf("Message verified with Alice's key: %t\n", scheme.Verify(sig, alice.PublicKey()))
	fmt.Printf("Message verified with Bob's key: %t\n", scheme.Verify(sig, bob.PublicKey()))
	return nil
}
