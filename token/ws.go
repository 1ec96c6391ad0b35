package token

// Insignificant reports whether c is skipped between tokens. Control
// bytes and anything past 7-bit printable ASCII count as whitespace.
// This is deliberately looser than RFC 8259 whitespace.
func Insignificant(c byte) bool {
	return c <= 32 || c >= 127
}

// SkipWS returns the index of the first significant byte at or after
// i. It never fails; the skipped run may be empty.
func SkipWS(d []byte, i int) int {
	for i < len(d) && Insignificant(d[i]) {
		i++
	}
	return i
}
