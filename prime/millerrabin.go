package prime

import "github.com/hupe1980/eulerkit/intmath"

// IsPrime reports whether value is prime using a Miller-Rabin test with a
// witness set that makes the answer deterministic for all 64-bit inputs.
//
// It is not constant-time and not intended for cryptographic use.
func IsPrime(value uint64) bool {
	if value < 2 {
		return false
	}
	if value == 2 {
		return true
	}
	if value%2 == 0 {
		return false
	}

	// value-1 = 2^s * d with d odd.
	d := value / 2
	s := uint64(1)
	for d&1 == 0 {
		d /= 2
		s++
	}

	for _, a := range witnesses(value) {
		if !witness(value, s, d, a) {
			return false
		}
	}
	return true
}

func witness(n, s, d, a uint64) bool {
	x := intmath.ModPow(a, d, n)
	var y uint64
	for ; s > 0; s-- {
		y = intmath.MulMod(x, x, n)
		if y == 1 && x != 1 && x != n-1 {
			return false
		}
		x = y
	}
	return y == 1
}

// witnesses returns a witness set sufficient to make Miller-Rabin
// deterministic for values below the associated threshold. Thresholds follow
// the published verification bounds for 64-bit integers.
func witnesses(value uint64) []uint64 {
	switch {
	case value < 2047:
		return []uint64{2}
	case value < 1_373_653:
		return []uint64{2, 3}
	case value < 9_080_191:
		return []uint64{31, 73}
	case value < 25_326_001:
		return []uint64{2, 3, 5}
	case value < 3_215_031_751:
		return []uint64{2, 3, 5, 7}
	case value < 4_759_123_141:
		return []uint64{2, 7, 61}
	case value < 2_152_302_898_747:
		return []uint64{2, 3, 5, 7, 11}
	case value < 3_474_749_660_383:
		return []uint64{2, 3, 5, 7, 11, 13}
	case value < 341_550_071_728_321:
		return []uint64{2, 3, 5, 7, 11, 13, 17}
	default:
		// Covers everything below 2^64.
		return []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}
	}
}
