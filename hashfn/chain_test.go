package hashfn

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"
)

func randDigest(t testing.TB) []byte {
	t.Helper()
	d := make([]byte, DigestSize)
	if _, err := io.ReadFull(rand.Reader, d); err != nil {
		t.Fatalf("failed to read random digest: %v", err)
	}
	return d
}

// Walking a+b steps must equal walking a steps and then b steps from the
// intermediate value.
func TestChainAssociative(t *testing.T) {
	for _, h := range []Hash{NewSHA256(), NewSHA3256()} {
		start := randDigest(t)
		totalSteps := 16

		endDirect := Chain(h, start, totalSteps)

		for split := 0; split <= totalSteps; split++ {
			intermediate := Chain(h, start, split)
			endIndirect := Chain(h, intermediate, totalSteps-split)

			if !bytes.Equal(endDirect, endIndirect) {
				t.Fatalf("Chain not associative at split %d: direct != indirect", split)
			}
		}
	}
}

// Chain with 0 steps returns the input unchanged, as a copy.
func TestChainZeroSteps(t *testing.T) {
	h := NewSHA256()
	start := randDigest(t)

	result := Chain(h, start, 0)

	if !bytes.Equal(result, start) {
		t.Fatal("Chain with 0 steps should return input unchanged")
	}

	// Mutating the result must not touch the input.
	result[0] ^= 0xff
	if bytes.Equal(result, start) {
		t.Fatal("Chain result aliases its input")
	}
}

func TestChainDeterministic(t *testing.T) {
	h := NewSHA256()

	start := make([]byte, DigestSize)
	for i := range start {
		start[i] = byte(i * 2)
	}

	result1 := Chain(h, start, 10)
	result2 := Chain(h, start, 10)
	result3 := Chain(h, start, 10)

	if !bytes.Equal(result1, result2) || !bytes.Equal(result2, result3) {
		t.Fatal("Chain is not deterministic")
	}
}

func TestChainVariousLengths(t *testing.T) {
	h := NewSHA256()
	start := randDigest(t)

	lengths := []int{1, 2, 4, 8, 16, 32, 64, 128, 255, 65535}

	for _, length := range lengths {
		result := Chain(h, start, length)
		if len(result) != DigestSize {
			t.Fatalf("Chain with %d steps produced wrong length: %d", length, len(result))
		}

		if bytes.Equal(result, start) {
			t.Fatalf("Chain with %d steps should modify input", length)
		}
	}
}

// Both instantiations must produce 32-byte digests and disagree with each
// other on the same input.
func TestInstantiations(t *testing.T) {
	input := []byte("hash chain input")

	sha2 := NewSHA256().Sum(input)
	sha3 := NewSHA3256().Sum(input)

	if len(sha2) != DigestSize || len(sha3) != DigestSize {
		t.Fatalf("digest sizes: sha2=%d sha3=%d, want %d", len(sha2), len(sha3), DigestSize)
	}

	if NewSHA256().Size() != DigestSize || NewSHA3256().Size() != DigestSize {
		t.Fatal("Size() disagrees with DigestSize")
	}

	if bytes.Equal(sha2, sha3) {
		t.Fatal("SHA-256 and SHA3-256 produced the same digest")
	}
}

func BenchmarkChain(b *testing.B) {
	h := NewSHA256()
	start := randDigest(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Chain(h, start, 255)
	}
}
