// Package wots implements the Winternitz one-time signature scheme: a
// hash-chain-based signature whose security rests only on the one-wayness
// of the underlying hash function. Each key pair signs at most one message;
// a second Sign call is rejected.
package wots

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hashchain-labs/wots-go/hashfn"
	"github.com/hashchain-labs/wots-go/internal/zeroize"
)

// ErrKeyUsed is returned by Sign once the key pair has already produced a
// signature. Revealing chain positions for two different digests leaks
// enough of the private chains to forge.
var ErrKeyUsed = errors.New("wots: key pair already used to sign")

// Chains are independent, so key generation and signing fan the walks out
// across goroutines above this chain count.
const parallelThreshold = 20

// PublicKey is the ordered chain endpoints, one digest-sized value per
// chain. Position i is tied to digest byte i.
type PublicKey [][]byte

// Signature is one revealed value per chain, each sitting somewhere between
// the seed and the endpoint of its chain.
type Signature [][]byte

// Scheme owns one key pair: the private chain seeds and the derived public
// endpoints. Construct with NewScheme, sign once, discard.
type Scheme struct {
	params Params
	hash   hashfn.Hash
	seeds  [][]byte
	public PublicKey
	used   bool
}

// NewScheme generates a key pair for parameter w, seeding the chains from
// crypto/rand and hashing with SHA-256.
func NewScheme(w uint) (*Scheme, error) {
	return NewSchemeFromReader(w, rand.Reader, hashfn.NewSHA256())
}

// NewSchemeFromReader generates a key pair with an injected entropy source
// and hash instantiation. Each of the n chains gets a fresh digest-sized
// seed from rng; its public endpoint is the seed hashed ChainLength times.
func NewSchemeFromReader(w uint, rng io.Reader, h hashfn.Hash) (*Scheme, error) {
	params, err := NewParams(w)
	if err != nil {
		return nil, err
	}

	seeds := make([][]byte, params.NumChains)
	for i := range seeds {
		seed := make([]byte, h.Size())
		if _, err := io.ReadFull(rng, seed); err != nil {
			return nil, fmt.Errorf("wots: read chain seed: %w", err)
		}
		seeds[i] = seed
	}

	public := make(PublicKey, params.NumChains)
	walkChains(params.NumChains, func(i int) {
		public[i] = hashfn.Chain(h, seeds[i], params.ChainLength)
	})

	return &Scheme{
		params: params,
		hash:   h,
		seeds:  seeds,
		public: public,
	}, nil
}

// Params returns the chain geometry of this key pair.
func (s *Scheme) Params() Params {
	return s.params
}

// PublicKey returns the chain endpoints in chain order. The returned slice
// is a view, not a copy.
func (s *Scheme) PublicKey() PublicKey {
	return s.public
}

// Sign signs message and marks the key pair used; any further call returns
// ErrKeyUsed. Component i is the seed of chain i hashed digit(i) times,
// where digit(i) is the i-th digest byte clamped to the chain length.
// Signing is deterministic: it consumes no randomness.
func (s *Scheme) Sign(message []byte) (Signature, error) {
	if s.used {
		return nil, ErrKeyUsed
	}
	s.used = true

	digest := s.hash.Sum(message)

	sig := make(Signature, s.params.NumChains)
	walkChains(s.params.NumChains, func(i int) {
		sig[i] = hashfn.Chain(s.hash, s.seeds[i], s.params.digit(digest, i))
	})

	return sig, nil
}

// Verify reports whether sig signs message under this key pair. Malformed
// signatures, including a wrong component count or component size, verify
// as false; Verify never returns an error.
func (s *Scheme) Verify(message []byte, sig Signature) bool {
	return VerifyKey(s.hash, s.params, s.public, message, sig)
}

// VerifyKey verifies sig against a bare public key, for callers holding a
// decoded key rather than a live Scheme. Each component is walked the rest
// of the way along its chain and compared to the stored endpoint, stopping
// at the first mismatch.
func VerifyKey(h hashfn.Hash, p Params, pub PublicKey, message []byte, sig Signature) bool {
	if len(sig) != p.NumChains || len(pub) != p.NumChains {
		return false
	}
	for _, component := range sig {
		if len(component) != h.Size() {
			return false
		}
	}

	digest := h.Sum(message)

	for i, component := range sig {
		remaining := p.ChainLength - p.digit(digest, i)
		endpoint := hashfn.Chain(h, component, remaining)

		if !bytes.Equal(endpoint, pub[i]) {
			return false
		}
	}

	return true
}

// Destroy wipes the private seeds and retires the key pair. The public key
// stays readable so previously issued signatures still verify.
func (s *Scheme) Destroy() {
	zeroize.Slices(s.seeds)
	s.used = true
}

// walkChains runs fn once per chain index. Small keys walk sequentially;
// larger ones spread the independent chains across goroutines. Both paths
// produce identical results.
func walkChains(n int, fn func(i int)) {
	if n <= parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}
