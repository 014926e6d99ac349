package wots

import (
	"errors"
	"fmt"
	"math/bits"
)

// DigestBits is the output size of the scheme's hash function in bits.
const DigestBits = 256

// ErrInvalidParameter is returned when the Winternitz parameter is zero or
// large enough that the chain-length arithmetic would overflow.
var ErrInvalidParameter = errors.New("wots: invalid winternitz parameter")

// Params ties the Winternitz parameter w to the derived chain geometry.
// Larger w means fewer, longer chains: shorter signatures at the cost of
// more hashing per operation.
type Params struct {
	// W is the Winternitz parameter. Practical values are 1 through 16.
	W uint

	// NumChains is the number of hash chains per key pair, 256/w + 1.
	// The +1 reserves one chain beyond those covering the digest bytes;
	// its digit is always zero.
	NumChains int

	// ChainLength is the number of links from seed to endpoint, 2^w - 1.
	ChainLength int
}

// NewParams derives the chain geometry for w. w must be positive and small
// enough that 1<<w fits the platform int.
func NewParams(w uint) (Params, error) {
	if w == 0 || w >= bits.UintSize-1 {
		return Params{}, fmt.Errorf("%w: w=%d", ErrInvalidParameter, w)
	}

	return Params{
		W:           w,
		NumChains:   DigestBits/int(w) + 1,
		ChainLength: (1 << w) - 1,
	}, nil
}

// digit is how far along chain i a signature value for digest sits: the
// i-th digest byte clamped to the chain length, or 0 for the reserved
// chain(s) past the digest. The clamp keeps every digit on the chain; it is
// not a base-2^w decomposition of the digest.
func (p Params) digit(digest []byte, i int) int {
	if i >= len(digest) {
		return 0
	}

	d := int(digest[i])
	if d > p.ChainLength {
		return p.ChainLength
	}
	return d
}
