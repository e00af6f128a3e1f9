package intmath

import (
	"math/big"
	"math/bits"
)

// pow10 holds every power of ten representable in a uint64.
var pow10 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000, 10000000000000000000,
}

// Exp10 returns 10**n. It panics if the result does not fit a uint64
// (n > 19).
func Exp10(n int) uint64 {
	if n < 0 || n >= len(pow10) {
		panic("intmath: power of ten out of uint64 range")
	}
	return pow10[n]
}

// FloorLog2 returns floor(log2(v)). It panics for v == 0.
func FloorLog2(v uint64) uint64 {
	if v == 0 {
		panic("intmath: log of zero")
	}
	return uint64(bits.Len64(v) - 1)
}

// CeilLog2 returns ceil(log2(v)). It panics for v == 0.
func CeilLog2(v uint64) uint64 {
	if v == 0 {
		panic("intmath: log of zero")
	}
	if v == 1 {
		return 0
	}
	return uint64(bits.Len64(v - 1))
}

// FloorLog10 returns floor(log10(v)). It panics for v == 0.
func FloorLog10(v uint64) uint64 {
	if v == 0 {
		panic("intmath: log of zero")
	}
	// Approximate from the binary length, then correct by at most one.
	guess := FloorLog2(v) * 1233 >> 12 // 1233/4096 ~ log10(2)
	if guess+1 < uint64(len(pow10)) && v >= pow10[guess+1] {
		guess++
	}
	return guess
}

// CeilLog10 returns ceil(log10(v)). It panics for v == 0.
func CeilLog10(v uint64) uint64 {
	f := FloorLog10(v)
	if v == pow10[f] {
		return f
	}
	return f + 1
}

// DigitCount returns the number of decimal digits of v; zero has one digit.
func DigitCount(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	return FloorLog10(v) + 1
}

// BigDigitCount returns the number of decimal digits of the absolute value
// of v; zero has one digit.
func BigDigitCount(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(v).String())
}
