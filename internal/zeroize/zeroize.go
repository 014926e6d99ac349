// Package zeroize wipes sensitive byte material.
package zeroize

// Bytes sets every byte in b to 0x00.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Slices wipes every byte slice in bs.
func Slices(bs [][]byte) {
	for _, b := range bs {
		Bytes(b)
	}
}
