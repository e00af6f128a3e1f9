package intmath

import "math/bits"

// MulMod returns (a * b) % m without overflowing, using the full 128-bit
// product. m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	// hi < m because a, b < m, so Div64 cannot panic.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow returns base**exponent % modulus by binary exponentiation.
// modulus must be non-zero.
func ModPow(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("intmath: zero modulus")
	}
	if modulus == 1 {
		return 0
	}
	result := uint64(1)
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = MulMod(result, base, modulus)
		}
		exponent >>= 1
		base = MulMod(base, base, modulus)
	}
	return result
}
