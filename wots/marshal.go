package wots

import (
	"errors"
	"fmt"

	"github.com/hashchain-labs/wots-go/hashfn"
)

// Canonical byte layout for keys and signatures: the parameter w in one
// byte, followed by n digest-sized chunks in chain order. n itself is
// derived from w, so decoding needs no length prefix.

// ErrBadEncoding is returned when an encoded key or signature does not
// match the canonical layout.
var ErrBadEncoding = errors.New("wots: malformed encoding")

// EncodePublicKey serializes pub under params.
func EncodePublicKey(params Params, pub PublicKey) ([]byte, error) {
	return encodeChunks(params, [][]byte(pub))
}

// DecodePublicKey parses the canonical public key layout, rederiving the
// chain geometry from the leading parameter byte.
func DecodePublicKey(data []byte) (Params, PublicKey, error) {
	params, chunks, err := decodeChunks(data)
	return params, PublicKey(chunks), err
}

// EncodeSignature serializes sig under params.
func EncodeSignature(params Params, sig Signature) ([]byte, error) {
	return encodeChunks(params, [][]byte(sig))
}

// DecodeSignature parses the canonical signature layout.
func DecodeSignature(data []byte) (Params, Signature, error) {
	params, chunks, err := decodeChunks(data)
	return params, Signature(chunks), err
}

func encodeChunks(params Params, chunks [][]byte) ([]byte, error) {
	if len(chunks) != params.NumChains {
		return nil, fmt.Errorf("%w: %d chunks, want %d", ErrBadEncoding, len(chunks), params.NumChains)
	}

	out := make([]byte, 0, 1+params.NumChains*hashfn.DigestSize)
	out = append(out, byte(params.W))

	for i, chunk := range chunks {
		if len(chunk) != hashfn.DigestSize {
			return nil, fmt.Errorf("%w: chunk %d is %d bytes, want %d", ErrBadEncoding, i, len(chunk), hashfn.DigestSize)
		}
		out = append(out, chunk...)
	}

	return out, nil
}

func decodeChunks(data []byte) (Params, [][]byte, error) {
	if len(data) < 1 {
		return Params{}, nil, fmt.Errorf("%w: empty", ErrBadEncoding)
	}

	params, err := NewParams(uint(data[0]))
	if err != nil {
		return Params{}, nil, err
	}

	body := data[1:]
	want := params.NumChains * hashfn.DigestSize
	if len(body) != want {
		return Params{}, nil, fmt.Errorf("%w: %d body bytes, want %d", ErrBadEncoding, len(body), want)
	}

	chunks := make([][]byte, params.NumChains)
	for i := range chunks {
		chunk := make([]byte, hashfn.DigestSize)
		copy(chunk, body[i*hashfn.DigestSize:])
		chunks[i] = chunk
	}

	return params, chunks, nil
}
