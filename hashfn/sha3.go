package hashfn

import "golang.org/x/crypto/sha3"

// SHA3256 is an alternative instantiation over SHA3-256, for callers that
// want the scheme on the SHA-3 family instead of SHA-2.
type SHA3256 struct{}

// NewSHA3256 returns the SHA3-256 instantiation.
func NewSHA3256() SHA3256 {
	return SHA3256{}
}

// Sum computes SHA3-256(data).
func (SHA3256) Sum(data []byte) []byte {
	digest := sha3.Sum256(data)
	return digest[:]
}

// Size returns the digest length in bytes.
func (SHA3256) Size() int {
	return DigestSize
}
