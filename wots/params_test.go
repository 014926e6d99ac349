package wots

import (
	"errors"
	"testing"
)

func TestNewParamsGeometry(t *testing.T) {
	testCases := []struct {
		w           uint
		numChains   int
		chainLength int
	}{
		{1, 257, 1},
		{2, 129, 3},
		{4, 65, 15},
		{8, 33, 255},
		{16, 17, 65535},
	}

	for _, tc := range testCases {
		p, err := NewParams(tc.w)
		if err != nil {
			t.Fatalf("NewParams(%d): %v", tc.w, err)
		}

		if p.NumChains != tc.numChains {
			t.Fatalf("w=%d: NumChains=%d, want %d", tc.w, p.NumChains, tc.numChains)
		}
		if p.ChainLength != tc.chainLength {
			t.Fatalf("w=%d: ChainLength=%d, want %d", tc.w, p.ChainLength, tc.chainLength)
		}
	}
}

func TestNewParamsInvalid(t *testing.T) {
	for _, w := range []uint{0, 63, 64, 1 << 20} {
		if _, err := NewParams(w); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("NewParams(%d): got %v, want ErrInvalidParameter", w, err)
		}
	}
}

func TestDigitDerivation(t *testing.T) {
	digest := make([]byte, 32)
	digest[0] = 0
	digest[1] = 7
	digest[2] = 200
	digest[31] = 255

	p, err := NewParams(4) // chain length 15
	if err != nil {
		t.Fatal(err)
	}

	if got := p.digit(digest, 0); got != 0 {
		t.Fatalf("digit(0)=%d, want 0", got)
	}
	if got := p.digit(digest, 1); got != 7 {
		t.Fatalf("digit(1)=%d, want 7", got)
	}

	// Bytes above the chain length clamp to it.
	if got := p.digit(digest, 2); got != 15 {
		t.Fatalf("digit(2)=%d, want clamped 15", got)
	}
	if got := p.digit(digest, 31); got != 15 {
		t.Fatalf("digit(31)=%d, want clamped 15", got)
	}

	// The reserved chain past the digest always gets 0.
	if got := p.digit(digest, 32); got != 0 {
		t.Fatalf("digit(32)=%d, want 0 for reserved chain", got)
	}

	// For w=8 the full byte range fits without clamping.
	p8, err := NewParams(8)
	if err != nil {
		t.Fatal(err)
	}
	if got := p8.digit(digest, 2); got != 200 {
		t.Fatalf("w=8 digit(2)=%d, want 200", got)
	}
}
