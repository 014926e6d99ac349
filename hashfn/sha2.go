package hashfn

import "crypto/sha256"

// SHA256 is the scheme's default hash.
type SHA256 struct{}

// NewSHA256 returns the SHA-256 instantiation.
func NewSHA256() SHA256 {
	return SHA256{}
}

// Sum computes SHA-256(data).
func (SHA256) Sum(data []byte) []byte {
	digest := sha256.Sum256(data)
	return digest[:]
}

// Size returns the digest length in bytes.
func (SHA256) Size() int {
	return DigestSize
}
