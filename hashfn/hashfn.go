// Package hashfn fixes the 256-bit hash function the signature scheme is
// built on and provides the iterated hash chain walker.
package hashfn

// DigestSize is the output length in bytes of every Hash in this package.
const DigestSize = 32

// Hash is one application of a fixed 256-bit cryptographic hash function.
type Hash interface {
	// Sum returns the digest of data without mutating it.
	Sum(data []byte) []byte

	// Size returns the digest length in bytes.
	Size() int
}

// Chain applies h to start steps times and returns the final value.
// Zero steps returns a copy of start unchanged. start is never mutated.
func Chain(h Hash, start []byte, steps int) []byte {
	current := make([]byte, len(start))
	copy(current, start)

	for i := 0; i < steps; i++ {
		current = h.Sum(current)
	}

	return current
}
